package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// SignerClient is a provider bound to a private key and a single chain id. It is created once
// at startup and shared read-only afterwards.
type SignerClient struct {
	provider Provider
	address  common.Address
	chainID  uint64
	signerFn bind.SignerFn
}

// NewSignerClient binds key to chainID on top of provider.
func NewSignerClient(provider Provider, key *ecdsa.PrivateKey, chainID uint64) (*SignerClient, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: nil private key", ErrMalformedKey)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to init NewKeyedTransactorWithChainID: %w", err)
	}

	return &SignerClient{
		provider: provider,
		address:  opts.From,
		chainID:  chainID,
		signerFn: opts.Signer,
	}, nil
}

// Address is the signing address derived from the private key.
func (c *SignerClient) Address() common.Address {
	return c.address
}

func (c *SignerClient) ChainID() uint64 {
	return c.chainID
}

func (c *SignerClient) Provider() Provider {
	return c.provider
}

// SignTx signs tx for the bound chain id.
func (c *SignerClient) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	return c.signerFn(c.address, tx)
}

// NewTransactOpts prepares options for a contract call sent from the signing address, with the
// node's suggested gas price scaled by gasPriceMultiplier.
func (c *SignerClient) NewTransactOpts(ctx context.Context, gasLimit uint64, gasPriceMultiplier float64) (*bind.TransactOpts, error) {
	nonce, err := c.provider.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending nonce: %w", err)
	}

	gasPrice, err := c.provider.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Ethereum gas estimate: %w", err)
	}

	return &bind.TransactOpts{
		From:     c.address,
		Nonce:    new(big.Int).SetUint64(nonce),
		Signer:   c.signerFn,
		Value:    big.NewInt(0), // in wei
		GasPrice: ApplyMultiplier(gasPrice, gasPriceMultiplier),
		GasLimit: gasLimit, // in units
		Context:  ctx,
	}, nil
}

// ApplyMultiplier returns value * multiplier rounded towards zero.
func ApplyMultiplier(value *big.Int, multiplier float64) *big.Int {
	scaled := new(big.Float).SetInt(value)
	scaled.Mul(scaled, big.NewFloat(multiplier))
	out, _ := scaled.Int(nil)
	return out
}
