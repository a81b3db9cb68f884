package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable the relayer reads,
// e.g. RELAYER_COSMOS_GRPC or RELAYER_RELAYER_MODE.
const EnvPrefix = "RELAYER"

// RelayerConfig is the static relayer configuration. It is loaded once in the start command
// and passed by value to everything that needs it.
type RelayerConfig struct {
	Cosmos   *CosmosConfig
	Ethereum *EthereumConfig
	Gravity  *GravityConfig
	Relayer  *RelayerSection
	Keystore *KeystoreConfig

	// ConnectionTimeout bounds the connection establishment to both chains.
	ConnectionTimeout time.Duration `split_words:"true" default:"17s"`
	WebserverPort     uint16        `split_words:"true" default:"10001"`
}

type CosmosConfig struct {
	Prefix string `default:"cosmos"`
	GRPC   string `default:"http://localhost:9090"`
}

type EthereumConfig struct {
	RPC                string  `default:"http://localhost:8545"`
	GasPriceMultiplier float64 `split_words:"true" default:"1.0"`
	GasMultiplier      float64 `split_words:"true" default:"1.0"`
	BlocksToSearch     uint64  `split_words:"true" default:"5000"`
}

type GravityConfig struct {
	Contract string `required:"true"`
}

// RelayerSection holds the relayer specific knobs: the fee-management mode, the address
// credited with relay fees and the list of ERC20 contracts the relayer is willing to relay.
type RelayerSection struct {
	Mode              string   `default:"Api"`
	PaymentAddress    string   `split_words:"true" default:"0x0000000000000000000000000000000000000000"`
	EthereumContracts []string `split_words:"true"`

	FeeAPIURL        string        `envconfig:"FEE_API_URL" default:"https://api.coingecko.com/api/v3/simple/token_price/ethereum"`
	FeeAPITimeout    time.Duration `envconfig:"FEE_API_TIMEOUT" default:"10s"`
	FeeFilePath      string        `split_words:"true" default:"token_prices.json"`
	ProfitMultiplier float64       `split_words:"true" default:"1.1"`
}

type KeystoreConfig struct {
	Dir        string
	Passphrase string
}

// NewRelayerConfig loads the configuration from the environment.
func NewRelayerConfig() (RelayerConfig, error) {
	var cfg RelayerConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process env config: %w", err)
	}

	if cfg.Keystore.Dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("failed to get user home dir for the default keystore: %w", err)
		}
		cfg.Keystore.Dir = filepath.Join(homeDir, ".gorc", "keystore")
	}

	return cfg, nil
}
