package config

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/ethereum"
	"github.com/neutron-org/gravity-relayer/internal/registry"
)

var ErrInvalidMultiplier = errors.New("multiplier must be a finite number greater than zero")

// Resolved is the typed form of RelayerConfig plus the start command flags. PaymentAddress may
// still be the zero address here; it is replaced by the signing address once the signer exists.
type Resolved struct {
	Mode            RelayerMode
	ContractAddress common.Address
	PaymentAddress  common.Address
	ContractFilter  *registry.Registry
	PrivateKey      *ecdsa.PrivateKey
}

// Resolve turns the raw configuration and CLI overrides into typed values. It performs no
// network I/O. Only malformed contract filter entries are tolerated, everything else is fatal.
func Resolve(cfg RelayerConfig, modeOverride, keyRef string, logger *zap.Logger) (*Resolved, error) {
	mode, err := ResolveMode(cfg.Relayer.Mode, modeOverride)
	if err != nil {
		return nil, err
	}
	logger.Info("relayer mode resolved", zap.Stringer("mode", mode))

	if err := ValidateMultipliers(cfg); err != nil {
		return nil, err
	}

	contract, err := ethereum.ParseAddress(cfg.Gravity.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gravity contract address: %w", err)
	}

	payment, err := ethereum.ParseAddress(cfg.Relayer.PaymentAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to parse relayer payment address: %w", err)
	}

	filter := ResolveContractFilter(cfg.Relayer.EthereumContracts, logger)

	key, err := ethereum.LoadPrivateKey(keyRef, cfg.Keystore.Dir, cfg.Keystore.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to load ethereum key: %w", err)
	}

	return &Resolved{
		Mode:            mode,
		ContractAddress: contract,
		PaymentAddress:  payment,
		ContractFilter:  filter,
		PrivateKey:      key,
	}, nil
}

// ValidateMultipliers rejects gas and profit multipliers that are NaN, infinite, zero or negative.
func ValidateMultipliers(cfg RelayerConfig) error {
	multipliers := []struct {
		name  string
		value float64
	}{
		{name: "gas price multiplier", value: cfg.Ethereum.GasPriceMultiplier},
		{name: "gas multiplier", value: cfg.Ethereum.GasMultiplier},
		{name: "profit multiplier", value: cfg.Relayer.ProfitMultiplier},
	}
	for _, m := range multipliers {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) || m.value <= 0 {
			return fmt.Errorf("%w: %s is %v", ErrInvalidMultiplier, m.name, m.value)
		}
	}
	return nil
}

// ResolveMode picks the CLI override when it is set and the configured mode otherwise.
func ResolveMode(configured, override string) (RelayerMode, error) {
	if override != "" {
		return ParseRelayerMode(override)
	}
	return ParseRelayerMode(configured)
}

// ResolveContractFilter parses every entry on its own. Malformed entries are logged and dropped,
// so the filter may end up empty even though entries were configured.
func ResolveContractFilter(entries []string, logger *zap.Logger) *registry.Registry {
	contracts := make([]common.Address, 0, len(entries))
	for _, entry := range entries {
		contract, err := ethereum.ParseAddress(entry)
		if err != nil {
			logger.Warn("error parsing contract in config", zap.String("contract", entry), zap.Error(err))
			continue
		}
		contracts = append(contracts, contract)
	}

	filter := registry.New(&registry.RegistryConfig{Contracts: contracts})
	if filter.IsEmpty() {
		logger.Info("no contracts found in config, relayer will relay all contracts")
	} else {
		logger.Info("supported contracts by the relayer", zap.Strings("contracts", filter.Strings()))
	}

	return filter
}
