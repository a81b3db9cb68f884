package fees

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var weiPerEth = new(big.Float).SetInt(big.NewInt(1e18))

// priceBook holds token prices in ETH per whole token.
type priceBook struct {
	mu     sync.RWMutex
	prices map[common.Address]float64
}

func newPriceBook() *priceBook {
	return &priceBook{prices: make(map[common.Address]float64)}
}

func (b *priceBook) get(contract common.Address) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	price, ok := b.prices[contract]
	return price, ok
}

func (b *priceBook) set(prices map[common.Address]float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for contract, price := range prices {
		b.prices[contract] = price
	}
}

func (b *priceBook) replace(prices map[common.Address]float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prices = prices
}

func (b *priceBook) contracts() []common.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]common.Address, 0, len(b.prices))
	for contract := range b.prices {
		out = append(out, contract)
	}
	return out
}

// rewardInWei converts amount base units of a token priced at price ETH into wei.
func rewardInWei(amount *big.Int, decimals uint8, price float64) *big.Float {
	unit := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value := new(big.Float).SetInt(amount)
	value.Mul(value, big.NewFloat(price))
	value.Mul(value, weiPerEth)
	return value.Quo(value, unit)
}

// isProfitable reports whether reward >= cost * multiplier.
func isProfitable(cost *big.Int, reward *big.Float, multiplier float64) bool {
	threshold := new(big.Float).SetInt(cost)
	threshold.Mul(threshold, big.NewFloat(multiplier))
	return reward.Cmp(threshold) >= 0
}
