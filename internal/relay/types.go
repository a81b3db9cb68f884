package relay

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"

	"github.com/neutron-org/gravity-relayer/internal/ethereum"
	"github.com/neutron-org/gravity-relayer/internal/fees"
	"github.com/neutron-org/gravity-relayer/internal/registry"
)

// Context is everything the relay loop runs with. It is assembled once at startup and handed
// over; the loop is its only user afterwards.
type Context struct {
	EthClient          *ethereum.SignerClient
	GRPC               *grpc.ClientConn
	CosmosPrefix       string
	ContractAddress    common.Address
	PaymentAddress     common.Address
	GasPriceMultiplier float64
	FeeManager         fees.FeeManager
	GasMultiplier      float64
	BlocksToSearch     uint64
	ContractFilter     *registry.Registry
}

// Loop is the steady-state relayer. Run blocks for the lifetime of the loop; returning means
// the relayer shuts down.
type Loop interface {
	Run(ctx context.Context, relayCtx *Context) error
}
