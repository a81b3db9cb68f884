package readiness

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/cosmos"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
)

// DefaultPollInterval is the delay between two Cosmos status queries.
const DefaultPollInterval = 5 * time.Second

var (
	ErrNoEthBalance = errors.New("you don't have any Ethereum")
	ErrNotSynced    = errors.New("cosmos node readiness was not confirmed")

	errNotReady = errors.New("cosmos node is not ready")
)

// Synced proves that WaitForCosmosNodeReady returned successfully. It is only handed out by
// pointer; a nil or zero value built elsewhere is refused by CheckForEth.
type Synced struct {
	height uint64
	ok     bool
}

// Height is the Cosmos block height observed when the node was found ready.
func (s *Synced) Height() uint64 {
	if s == nil {
		return 0
	}
	return s.height
}

// Gate runs the readiness checks that must pass before relaying starts.
type Gate struct {
	logger       *zap.Logger
	pollInterval time.Duration
}

func NewGate(logger *zap.Logger, pollInterval time.Duration) *Gate {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Gate{
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// WaitForCosmosNodeReady blocks until the Cosmos node is caught up and producing blocks.
// Query errors are logged and polled again; only ctx cancellation ends the wait early.
func (g *Gate) WaitForCosmosNodeReady(ctx context.Context, contact cosmos.Contact) (*Synced, error) {
	var status cosmos.ChainStatus
	err := retry.Do(func() error {
		var err error
		status, err = contact.GetChainStatus(ctx)
		if err != nil {
			return err
		}
		if !status.Ready() {
			return fmt.Errorf("%w: %s", errNotReady, status.Kind)
		}
		return nil
	},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(g.pollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			switch {
			case errors.Is(err, errNotReady) && status.Kind == cosmos.Syncing:
				g.logger.Info("Cosmos node syncing, waiting", zap.Uint("attempt", n))
			case errors.Is(err, errNotReady) && status.Kind == cosmos.WaitingToStart:
				g.logger.Info("Cosmos node waiting for chain start, waiting", zap.Uint("attempt", n))
			default:
				g.logger.Warn("failed to get cosmos chain status", zap.Uint("attempt", n), zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for cosmos node: %w", err)
	}

	g.logger.Info("Cosmos node is ready", zap.Uint64("height", status.BlockHeight))
	return &Synced{height: status.BlockHeight, ok: true}, nil
}

// CheckForEth verifies the signing address holds a non-zero balance. It refuses to run without
// a Synced token from WaitForCosmosNodeReady.
func (g *Gate) CheckForEth(ctx context.Context, synced *Synced, signer *ethereum.SignerClient) error {
	if synced == nil || !synced.ok {
		return ErrNotSynced
	}

	address := signer.Address()
	balance, err := signer.Provider().BalanceAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("failed to get balance of %s: %w", address.Hex(), err)
	}
	if balance == nil || balance.Cmp(big.NewInt(0)) == 0 {
		return fmt.Errorf("%w: address %s has a zero balance", ErrNoEthBalance, address.Hex())
	}

	g.logger.Info("signer has ethereum", zap.String("address", address.Hex()), zap.Stringer("balance", balance))
	return nil
}
