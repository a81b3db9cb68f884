package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrChainIDQuery    = errors.New("could not retrieve chain ID")
	ErrChainIDOverflow = errors.New("chain ID overflowed when downcasting to u64")
	ErrChainIDInvalid  = errors.New("chain ID must be a positive integer")
)

// QueryChainID asks the provider for its chain id and narrows it to 64 bits.
func QueryChainID(ctx context.Context, provider Provider) (uint64, error) {
	chainID, err := provider.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrChainIDQuery, err)
	}

	return DowncastToUint64(chainID)
}

// DowncastToUint64 narrows a chain id, failing instead of truncating when it doesn't fit.
func DowncastToUint64(chainID *big.Int) (uint64, error) {
	if chainID == nil || chainID.Sign() <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrChainIDInvalid, chainID)
	}
	if !chainID.IsUint64() {
		return 0, fmt.Errorf("%w: got %s", ErrChainIDOverflow, chainID.String())
	}

	return chainID.Uint64(), nil
}
