package app

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/neutron-org/gravity-relayer/internal/config"
	"github.com/neutron-org/gravity-relayer/internal/registry"
)

// Status is the startup progress served by the webserver. Fields are filled as their stage
// resolves them.
type Status struct {
	Stage           string   `json:"stage"`
	Mode            string   `json:"mode,omitempty"`
	ChainID         uint64   `json:"chain_id,omitempty"`
	ContractAddress string   `json:"contract_address,omitempty"`
	SigningAddress  string   `json:"signing_address,omitempty"`
	PaymentAddress  string   `json:"payment_address,omitempty"`
	ContractFilter  []string `json:"contract_filter"`
	CosmosHeight    uint64   `json:"cosmos_height,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// StatusTracker is written by the startup sequence and read by the webserver.
type StatusTracker struct {
	mu     sync.RWMutex
	status Status
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{status: Status{Stage: StageConfig, ContractFilter: []string{}}}
}

// Status returns a copy of the current status.
func (t *StatusTracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := t.status
	out.ContractFilter = append([]string{}, t.status.ContractFilter...)
	return out
}

func (t *StatusTracker) setStage(stage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Stage = stage
}

func (t *StatusTracker) setError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Error = err.Error()
}

func (t *StatusTracker) setResolved(mode config.RelayerMode, contract common.Address, filter *registry.Registry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Mode = mode.String()
	t.status.ContractAddress = contract.Hex()
	t.status.ContractFilter = filter.Strings()
}

func (t *StatusTracker) setChainID(chainID uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.ChainID = chainID
}

func (t *StatusTracker) setAddresses(signing, payment common.Address) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.SigningAddress = signing.Hex()
	t.status.PaymentAddress = payment.Hex()
}

func (t *StatusTracker) setCosmosHeight(height uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.CosmosHeight = height
}
