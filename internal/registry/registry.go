package registry

import (
	"github.com/ethereum/go-ethereum/common"
)

// RegistryConfig represents the config structure for the Registry.
type RegistryConfig struct {
	Contracts []common.Address
}

// New instantiates a new *Registry based on the cfg. Duplicate contracts are stored once.
func New(cfg *RegistryConfig) *Registry {
	r := &Registry{
		contracts: make(map[common.Address]struct{}, len(cfg.Contracts)),
	}
	for _, contract := range cfg.Contracts {
		if _, ex := r.contracts[contract]; ex {
			continue
		}
		r.contracts[contract] = struct{}{}
		r.ordered = append(r.ordered, contract)
	}
	return r
}

// Registry is the relayer's contract filter. It contains the list of ERC20 contracts the relayer
// is willing to relay batches for. An empty registry means there is no restriction at all.
type Registry struct {
	contracts map[common.Address]struct{}
	ordered   []common.Address
}

// IsEmpty returns true if the registry contracts list is empty.
func (r *Registry) IsEmpty() bool {
	return len(r.contracts) == 0
}

// Contains returns true if the contract is in the registry.
func (r *Registry) Contains(contract common.Address) bool {
	_, ex := r.contracts[contract]
	return ex
}

// Allows reports whether the relayer may relay for the contract: either the registry is empty or
// it contains the contract.
func (r *Registry) Allows(contract common.Address) bool {
	return r.IsEmpty() || r.Contains(contract)
}

func (r *Registry) Len() int {
	return len(r.ordered)
}

// GetContracts returns the contracts in configuration order.
func (r *Registry) GetContracts() []common.Address {
	if len(r.ordered) == 0 {
		return nil
	}
	out := make([]common.Address, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Strings returns the checksummed hex form of every contract, in configuration order.
func (r *Registry) Strings() []string {
	out := make([]string, 0, len(r.ordered))
	for _, contract := range r.ordered {
		out = append(out, contract.Hex())
	}
	return out
}
