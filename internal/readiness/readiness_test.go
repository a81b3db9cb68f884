package readiness_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/cosmos"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
	"github.com/neutron-org/gravity-relayer/internal/readiness"
	mock_cosmos "github.com/neutron-org/gravity-relayer/testutil/mocks/cosmos"
	mock_ethereum "github.com/neutron-org/gravity-relayer/testutil/mocks/ethereum"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func newSigner(t *testing.T, provider ethereum.Provider) *ethereum.SignerClient {
	key, err := ethcrypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)
	signer, err := ethereum.NewSignerClient(provider, key, 1)
	require.NoError(t, err)
	return signer
}

func TestWaitForCosmosNodeReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contact := mock_cosmos.NewMockContact(ctrl)
	gomock.InOrder(
		contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{}, errors.New("connection refused")),
		contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{Kind: cosmos.WaitingToStart}, nil),
		contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{Kind: cosmos.Syncing}, nil),
		contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{Kind: cosmos.Moving, BlockHeight: 100}, nil),
	)

	gate := readiness.NewGate(zap.NewNop(), time.Millisecond)
	synced, err := gate.WaitForCosmosNodeReady(context.Background(), contact)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), synced.Height())
}

func TestWaitForCosmosNodeReadyCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contact := mock_cosmos.NewMockContact(ctrl)
	contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{Kind: cosmos.Syncing}, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	gate := readiness.NewGate(zap.NewNop(), 10*time.Millisecond)
	synced, err := gate.WaitForCosmosNodeReady(ctx, contact)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, synced)

	// the token of a failed wait does not unlock the liveness check
	provider := mock_ethereum.NewMockProvider(ctrl)
	err = gate.CheckForEth(context.Background(), synced, newSigner(t, provider))
	assert.ErrorIs(t, err, readiness.ErrNotSynced)
}

func TestCheckForEthRequiresSyncedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no BalanceAt expectation: the provider must not be queried
	provider := mock_ethereum.NewMockProvider(ctrl)

	gate := readiness.NewGate(zap.NewNop(), time.Millisecond)
	signer := newSigner(t, provider)

	assert.ErrorIs(t, gate.CheckForEth(context.Background(), nil, signer), readiness.ErrNotSynced)
	assert.ErrorIs(t, gate.CheckForEth(context.Background(), &readiness.Synced{}, signer), readiness.ErrNotSynced)
}

func TestCheckForEth(t *testing.T) {
	tests := []struct {
		name       string
		balance    *big.Int
		balanceErr error
		err        error
	}{
		{name: "funded", balance: big.NewInt(1)},
		{name: "zero balance", balance: big.NewInt(0), err: readiness.ErrNoEthBalance},
		{name: "rpc error", balanceErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			contact := mock_cosmos.NewMockContact(ctrl)
			provider := mock_ethereum.NewMockProvider(ctrl)
			signer := newSigner(t, provider)

			gomock.InOrder(
				contact.EXPECT().GetChainStatus(gomock.Any()).Return(cosmos.ChainStatus{Kind: cosmos.Moving, BlockHeight: 1}, nil),
				provider.EXPECT().BalanceAt(gomock.Any(), signer.Address(), nil).Return(tt.balance, tt.balanceErr),
			)

			gate := readiness.NewGate(zap.NewNop(), time.Millisecond)
			synced, err := gate.WaitForCosmosNodeReady(context.Background(), contact)
			require.NoError(t, err)

			err = gate.CheckForEth(context.Background(), synced, signer)
			switch {
			case tt.balanceErr != nil:
				assert.ErrorIs(t, err, tt.balanceErr)
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
