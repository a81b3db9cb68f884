package cosmos

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client/grpc/cmtservice"
	"google.golang.org/grpc"
)

var _ Contact = (*GRPCContact)(nil)

// Contact is the Cosmos node client used for status queries.
type Contact interface {
	Prefix() string
	GetChainStatus(ctx context.Context) (ChainStatus, error)
}

// GRPCContact queries node status through the CometBFT service of a Cosmos SDK node.
type GRPCContact struct {
	client cmtservice.ServiceClient
	prefix string
}

// NewContact creates a Contact on top of an established gRPC connection.
func NewContact(conn grpc.ClientConnInterface, prefix string) *GRPCContact {
	return NewContactFromClient(cmtservice.NewServiceClient(conn), prefix)
}

func NewContactFromClient(client cmtservice.ServiceClient, prefix string) *GRPCContact {
	return &GRPCContact{
		client: client,
		prefix: prefix,
	}
}

// Prefix is the bech32 human readable part of the chain's account addresses.
func (c *GRPCContact) Prefix() string {
	return c.prefix
}

// GetChainStatus reports Syncing while the node catches up, WaitingToStart before the first
// block and Moving with the latest height otherwise.
func (c *GRPCContact) GetChainStatus(ctx context.Context) (ChainStatus, error) {
	syncing, err := c.client.GetSyncing(ctx, &cmtservice.GetSyncingRequest{})
	if err != nil {
		return ChainStatus{}, fmt.Errorf("failed to get syncing status: %w", err)
	}
	if syncing.GetSyncing() {
		return ChainStatus{Kind: Syncing}, nil
	}

	latest, err := c.client.GetLatestBlock(ctx, &cmtservice.GetLatestBlockRequest{})
	if err != nil {
		return ChainStatus{}, fmt.Errorf("failed to get latest block: %w", err)
	}

	height := latestHeight(latest)
	if height <= 0 {
		return ChainStatus{Kind: WaitingToStart}, nil
	}

	return ChainStatus{Kind: Moving, BlockHeight: uint64(height)}, nil
}

func latestHeight(res *cmtservice.GetLatestBlockResponse) int64 {
	if block := res.GetSdkBlock(); block != nil {
		return block.Header.Height
	}
	// nodes older than v0.47 only fill the deprecated field
	if block := res.GetBlock(); block != nil {
		return block.Header.Height
	}
	return 0
}
