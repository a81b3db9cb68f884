package fees

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/config"
)

type apiFeeManager struct {
	client     *PriceClient
	prices     *priceBook
	multiplier float64
	primed     []common.Address
	logger     *zap.Logger
}

func newAPIFeeManager(ctx context.Context, cfg Config, logger *zap.Logger) (*apiFeeManager, error) {
	client, err := NewPriceClient(cfg.APIURL, cfg.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create price client: %w", err)
	}

	m := &apiFeeManager{
		client:     client,
		prices:     newPriceBook(),
		multiplier: cfg.ProfitMultiplier,
		primed:     cfg.Contracts,
		logger:     logger,
	}

	if len(m.primed) > 0 {
		if err := m.fetch(ctx, m.primed); err != nil {
			return nil, fmt.Errorf("failed to prime token prices: %w", err)
		}
	}

	logger.Info("api fee manager ready", zap.Int("priced_tokens", len(m.prices.contracts())))
	return m, nil
}

func (m *apiFeeManager) Mode() config.RelayerMode {
	return config.Api
}

// CanSendBatch fetches the reward token price on first sight.
func (m *apiFeeManager) CanSendBatch(ctx context.Context, estimatedCost *big.Int, reward Reward) (bool, error) {
	price, ok := m.prices.get(reward.Contract)
	if !ok {
		if err := m.fetch(ctx, []common.Address{reward.Contract}); err != nil {
			return false, err
		}
		if price, ok = m.prices.get(reward.Contract); !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownPrice, reward.Contract.Hex())
		}
	}

	value := rewardInWei(reward.Amount, reward.Decimals, price)
	profitable := isProfitable(estimatedCost, value, m.multiplier)
	m.logger.Debug("batch profitability",
		zap.String("token", reward.Contract.Hex()),
		zap.Stringer("reward_wei", value),
		zap.Stringer("cost_wei", estimatedCost),
		zap.Bool("profitable", profitable),
	)
	return profitable, nil
}

// Refresh re-fetches every token priced so far.
func (m *apiFeeManager) Refresh(ctx context.Context) error {
	contracts := m.prices.contracts()
	if len(contracts) == 0 {
		return nil
	}
	return m.fetch(ctx, contracts)
}

func (m *apiFeeManager) fetch(ctx context.Context, contracts []common.Address) error {
	prices, err := m.client.GetTokenPrices(ctx, contracts)
	if err != nil {
		return fmt.Errorf("failed to get token prices: %w", err)
	}
	m.prices.set(prices)
	return nil
}
