package fees

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/config"
)

var ErrUnknownPrice = errors.New("no price known for token")

// FeeManager decides whether relaying a batch is worth its gas. The relay loop owns it after
// startup and is the only caller.
type FeeManager interface {
	Mode() config.RelayerMode
	// CanSendBatch compares the estimated cost of a batch, in wei, to the reward it pays out.
	CanSendBatch(ctx context.Context, estimatedCost *big.Int, reward Reward) (bool, error)
	// Refresh updates the prices the decisions are based on.
	Refresh(ctx context.Context) error
}

// Reward is the fee a batch pays to its relayer, in base units of an ERC20 token.
type Reward struct {
	Contract common.Address
	Amount   *big.Int
	Decimals uint8
}

type Config struct {
	APIURL           string
	HTTPTimeout      time.Duration
	FilePath         string
	ProfitMultiplier float64
	// Contracts are priced upfront by the Api manager.
	Contracts []common.Address
}

// NewFeeManager builds the strategy for mode. Api fetches the prices of cfg.Contracts and File
// loads its price file before returning; any failure there is returned.
func NewFeeManager(ctx context.Context, mode config.RelayerMode, cfg Config, logger *zap.Logger) (FeeManager, error) {
	switch mode {
	case config.AlwaysRelay:
		logger.Info("relaying every batch regardless of fees")
		return alwaysRelay{}, nil
	case config.Api:
		return newAPIFeeManager(ctx, cfg, logger)
	case config.File:
		return newFileFeeManager(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownMode, mode)
	}
}

type alwaysRelay struct{}

func (alwaysRelay) Mode() config.RelayerMode {
	return config.AlwaysRelay
}

func (alwaysRelay) CanSendBatch(context.Context, *big.Int, Reward) (bool, error) {
	return true, nil
}

func (alwaysRelay) Refresh(context.Context) error {
	return nil
}
