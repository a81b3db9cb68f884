package registry_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	"github.com/neutron-org/gravity-relayer/internal/registry"
)

var (
	usdc = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	dai  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	weth = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
)

func TestRegistryWithEmptyContracts(t *testing.T) {
	cfg := registry.RegistryConfig{}
	r := registry.New(&cfg)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(usdc))
	assert.True(t, r.Allows(usdc))
	assert.Equal(t, []common.Address(nil), r.GetContracts())
	assert.Empty(t, r.Strings())
}

func TestRegistryWithContracts(t *testing.T) {
	cfg := registry.RegistryConfig{
		Contracts: []common.Address{usdc, dai},
	}
	r := registry.New(&cfg)
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(usdc))
	assert.True(t, r.Contains(dai))
	assert.False(t, r.Contains(weth))
	assert.True(t, r.Allows(dai))
	assert.False(t, r.Allows(weth))
	assert.Equal(t, []common.Address{usdc, dai}, r.GetContracts())
	assert.Equal(t, []string{usdc.Hex(), dai.Hex()}, r.Strings())
}

func TestRegistryDeduplicatesContracts(t *testing.T) {
	cfg := registry.RegistryConfig{
		Contracts: []common.Address{weth, usdc, weth},
	}
	r := registry.New(&cfg)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []common.Address{weth, usdc}, r.GetContracts())
}

func TestRegistryGetContractsReturnsCopy(t *testing.T) {
	r := registry.New(&registry.RegistryConfig{Contracts: []common.Address{usdc}})
	contracts := r.GetContracts()
	contracts[0] = dai
	assert.True(t, r.Contains(usdc))
	assert.Equal(t, []common.Address{usdc}, r.GetContracts())
}
