package config_test

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/neutron-org/gravity-relayer/internal/config"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
)

const (
	testKey      = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	gravityAddr  = "0xa4108aA1Ec4967F8b52220a4f7e94A8201F2D906"
	usdcAddr     = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	daiAddr      = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	zeroAddr     = "0x0000000000000000000000000000000000000000"
	emptyMessage = "no contracts found in config, relayer will relay all contracts"
)

func testConfig() config.RelayerConfig {
	return config.RelayerConfig{
		Cosmos:   &config.CosmosConfig{Prefix: "gravity", GRPC: "http://localhost:9090"},
		Ethereum: &config.EthereumConfig{RPC: "http://localhost:8545", GasPriceMultiplier: 1, GasMultiplier: 1},
		Gravity:  &config.GravityConfig{Contract: gravityAddr},
		Relayer:  &config.RelayerSection{Mode: "Api", PaymentAddress: zeroAddr, ProfitMultiplier: 1.1},
		Keystore: &config.KeystoreConfig{},
	}
}

func TestResolve(t *testing.T) {
	cfg := testConfig()
	cfg.Relayer.EthereumContracts = []string{usdcAddr}

	resolved, err := config.Resolve(cfg, "AlwaysRelay", testKey, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, config.AlwaysRelay, resolved.Mode)
	assert.Equal(t, common.HexToAddress(gravityAddr), resolved.ContractAddress)
	assert.Equal(t, common.Address{}, resolved.PaymentAddress)
	assert.Equal(t, []common.Address{common.HexToAddress(usdcAddr)}, resolved.ContractFilter.GetContracts())
	assert.NotNil(t, resolved.PrivateKey)
}

func TestResolveKeepsConfiguredPaymentAddress(t *testing.T) {
	cfg := testConfig()
	cfg.Relayer.PaymentAddress = daiAddr

	resolved, err := config.Resolve(cfg, "", testKey, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, config.Api, resolved.Mode)
	assert.Equal(t, common.HexToAddress(daiAddr), resolved.PaymentAddress)
}

func TestResolveFatalErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.RelayerConfig)
		mode   string
		key    string
		err    error
	}{
		{
			name: "unknown mode override",
			mode: "Maybe",
			key:  testKey,
			err:  config.ErrUnknownMode,
		},
		{
			name:   "unknown configured mode",
			mutate: func(cfg *config.RelayerConfig) { cfg.Relayer.Mode = "Maybe" },
			key:    testKey,
			err:    config.ErrUnknownMode,
		},
		{
			name:   "malformed contract",
			mutate: func(cfg *config.RelayerConfig) { cfg.Gravity.Contract = "0xnotanaddress" },
			key:    testKey,
			err:    ethereum.ErrMalformedAddress,
		},
		{
			name:   "malformed payment address",
			mutate: func(cfg *config.RelayerConfig) { cfg.Relayer.PaymentAddress = "gravity1xyz" },
			key:    testKey,
			err:    ethereum.ErrMalformedAddress,
		},
		{
			name:   "NaN gas price multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Ethereum.GasPriceMultiplier = math.NaN() },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name:   "negative gas price multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Ethereum.GasPriceMultiplier = -2 },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name:   "infinite gas multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Ethereum.GasMultiplier = math.Inf(1) },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name:   "zero gas multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Ethereum.GasMultiplier = 0 },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name:   "NaN profit multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Relayer.ProfitMultiplier = math.NaN() },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name:   "negative profit multiplier",
			mutate: func(cfg *config.RelayerConfig) { cfg.Relayer.ProfitMultiplier = -1.1 },
			key:    testKey,
			err:    config.ErrInvalidMultiplier,
		},
		{
			name: "malformed key",
			key:  "not-a-key",
			err:  ethereum.ErrMalformedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Keystore.Dir = t.TempDir()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			_, err := config.Resolve(cfg, tt.mode, tt.key, zap.NewNop())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestResolveContractFilterSkipsMalformedEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	filter := config.ResolveContractFilter([]string{usdcAddr, "0xdeadbeef", daiAddr}, zap.New(core))

	assert.Equal(t, 2, filter.Len())
	assert.Equal(t, []common.Address{common.HexToAddress(usdcAddr), common.HexToAddress(daiAddr)}, filter.GetContracts())
	assert.Equal(t, 1, logs.FilterMessage("error parsing contract in config").Len())
	assert.Equal(t, 1, logs.FilterMessage("supported contracts by the relayer").Len())
}

func TestResolveContractFilterEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	filter := config.ResolveContractFilter(nil, zap.New(core))

	assert.True(t, filter.IsEmpty())
	assert.Equal(t, 1, logs.FilterMessage(emptyMessage).Len())
	assert.Equal(t, 0, logs.FilterMessage("error parsing contract in config").Len())
}

func TestResolveContractFilterAllMalformed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	filter := config.ResolveContractFilter([]string{"usdc", "dai"}, zap.New(core))

	assert.True(t, filter.IsEmpty())
	assert.True(t, filter.Allows(common.HexToAddress(usdcAddr)))
	assert.Equal(t, 2, logs.FilterMessage("error parsing contract in config").Len())
	assert.Equal(t, 1, logs.FilterMessage(emptyMessage).Len())
}

func TestNewRelayerConfigNaNMultiplierIsRejected(t *testing.T) {
	t.Setenv("RELAYER_GRAVITY_CONTRACT", gravityAddr)
	t.Setenv("RELAYER_KEYSTORE_DIR", t.TempDir())
	t.Setenv("RELAYER_ETHEREUM_GAS_PRICE_MULTIPLIER", "NaN")

	cfg, err := config.NewRelayerConfig()
	require.NoError(t, err)

	_, err = config.Resolve(cfg, "", testKey, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrInvalidMultiplier)
}
