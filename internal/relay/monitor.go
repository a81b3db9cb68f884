package relay

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/neutron-org/gravity-relayer/internal/cosmos"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
	"github.com/neutron-org/gravity-relayer/internal/metrics"
)

// LoopSpeed is the relay loop period. The connection timeout defaults to it as well.
const LoopSpeed = 17 * time.Second

var weiPerEth = new(big.Float).SetInt(big.NewInt(1e18))

// ContactFactory builds the Cosmos status client from the relay gRPC connection.
type ContactFactory func(conn grpc.ClientConnInterface, prefix string) cosmos.Contact

// MonitorLoop keeps an eye on both chains and the signer: every period it publishes the chain
// heads, the signer balance and the gas price as metrics and refreshes the fee manager prices.
type MonitorLoop struct {
	logger     *zap.Logger
	loopSpeed  time.Duration
	newContact ContactFactory
}

func NewMonitorLoop(logger *zap.Logger, loopSpeed time.Duration) *MonitorLoop {
	return NewMonitorLoopWithContact(logger, loopSpeed, func(conn grpc.ClientConnInterface, prefix string) cosmos.Contact {
		return cosmos.NewContact(conn, prefix)
	})
}

func NewMonitorLoopWithContact(logger *zap.Logger, loopSpeed time.Duration, newContact ContactFactory) *MonitorLoop {
	if loopSpeed <= 0 {
		loopSpeed = LoopSpeed
	}
	return &MonitorLoop{
		logger:     logger,
		loopSpeed:  loopSpeed,
		newContact: newContact,
	}
}

// Run returns nil once ctx is done. Failed iterations are logged and the loop goes on.
func (l *MonitorLoop) Run(ctx context.Context, relayCtx *Context) error {
	contact := l.newContact(relayCtx.GRPC, relayCtx.CosmosPrefix)

	l.logger.Info("relay loop started",
		zap.String("gravity_contract", relayCtx.ContractAddress.Hex()),
		zap.String("cosmos_prefix", relayCtx.CosmosPrefix),
		zap.String("payment_address", relayCtx.PaymentAddress.Hex()),
		zap.Stringer("fee_mode", relayCtx.FeeManager.Mode()),
		zap.Float64("gas_price_multiplier", relayCtx.GasPriceMultiplier),
		zap.Float64("gas_multiplier", relayCtx.GasMultiplier),
		zap.Uint64("blocks_to_search", relayCtx.BlocksToSearch),
		zap.Strings("contract_filter", relayCtx.ContractFilter.Strings()),
		zap.Duration("loop_speed", l.loopSpeed),
	)

	ticker := time.NewTicker(l.loopSpeed)
	defer ticker.Stop()

	for {
		start := time.Now()
		if err := l.iterate(ctx, relayCtx, contact); err != nil {
			metrics.IncFailedLoopIteration()
			l.logger.Error("relay loop iteration failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		} else {
			metrics.IncSuccessLoopIteration()
			l.logger.Debug("relay loop iteration done", zap.Duration("took", time.Since(start)))
		}

		select {
		case <-ctx.Done():
			l.logger.Info("Context cancelled, shutting down relay loop...")
			return nil
		case <-ticker.C:
		}
	}
}

func (l *MonitorLoop) iterate(ctx context.Context, relayCtx *Context, contact cosmos.Contact) error {
	var errs []error
	provider := relayCtx.EthClient.Provider()

	head, err := provider.BlockNumber(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to get ethereum block number: %w", err))
	} else {
		metrics.SetEthereumHeight(head)
	}

	status, err := contact.GetChainStatus(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("failed to get cosmos chain status: %w", err))
	case status.Ready():
		metrics.SetCosmosHeight(status.BlockHeight)
	default:
		l.logger.Warn("cosmos node is not moving", zap.Stringer("status", status.Kind))
	}

	balance, err := provider.BalanceAt(ctx, relayCtx.EthClient.Address(), nil)
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to get signer balance: %w", err))
	} else {
		inEth, _ := new(big.Float).Quo(new(big.Float).SetInt(balance), weiPerEth).Float64()
		metrics.SetSignerBalance(inEth)
		if balance.Sign() == 0 {
			l.logger.Warn("signer ran out of ethereum", zap.String("address", relayCtx.EthClient.Address().Hex()))
		}
	}

	price, err := provider.SuggestGasPrice(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to get ethereum gas price: %w", err))
	} else {
		scaled, _ := new(big.Float).SetInt(ethereum.ApplyMultiplier(price, relayCtx.GasPriceMultiplier)).Float64()
		metrics.SetGasPrice(scaled)
	}

	if err := relayCtx.FeeManager.Refresh(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to refresh fee manager: %w", err))
	}

	return errors.Join(errs...)
}
