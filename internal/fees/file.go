package fees

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/config"
)

// fileFeeManager reads prices from a JSON object mapping token contracts to their price in ETH:
//
//	{"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48": 0.00031}
type fileFeeManager struct {
	path       string
	prices     *priceBook
	multiplier float64
	logger     *zap.Logger
}

func newFileFeeManager(cfg Config, logger *zap.Logger) (*fileFeeManager, error) {
	m := &fileFeeManager{
		path:       cfg.FilePath,
		prices:     newPriceBook(),
		multiplier: cfg.ProfitMultiplier,
		logger:     logger,
	}
	if err := m.load(); err != nil {
		return nil, err
	}

	logger.Info("file fee manager ready", zap.String("path", m.path), zap.Int("priced_tokens", len(m.prices.contracts())))
	return m, nil
}

func (m *fileFeeManager) Mode() config.RelayerMode {
	return config.File
}

// CanSendBatch never relays tokens missing from the price file.
func (m *fileFeeManager) CanSendBatch(_ context.Context, estimatedCost *big.Int, reward Reward) (bool, error) {
	price, ok := m.prices.get(reward.Contract)
	if !ok {
		m.logger.Debug("token is not in the price file", zap.String("token", reward.Contract.Hex()))
		return false, nil
	}

	return isProfitable(estimatedCost, rewardInWei(reward.Amount, reward.Decimals, price), m.multiplier), nil
}

// Refresh reloads the price file.
func (m *fileFeeManager) Refresh(context.Context) error {
	return m.load()
}

func (m *fileFeeManager) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("failed to read price file %s: %w", m.path, err)
	}

	raw := make(map[string]float64)
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode price file %s: %w", m.path, err)
	}

	prices := make(map[common.Address]float64, len(raw))
	for address, price := range raw {
		if !common.IsHexAddress(address) {
			return fmt.Errorf("malformed token contract %q in price file %s", address, m.path)
		}
		prices[common.HexToAddress(address)] = price
	}

	m.prices.replace(prices)
	return nil
}
