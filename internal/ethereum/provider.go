package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var _ Provider = (*ethclient.Client)(nil)

// Provider is the subset of the Ethereum JSON-RPC API the relayer relies on.
// *ethclient.Client implements it.
type Provider interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	Close()
}

var ErrMalformedAddress = errors.New("malformed ethereum address")

// ParseAddress parses a 20 byte hex address, with or without the 0x prefix.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrMalformedAddress, s)
	}
	return common.HexToAddress(s), nil
}
