package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/config"
	"github.com/neutron-org/gravity-relayer/internal/connections"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
	"github.com/neutron-org/gravity-relayer/internal/fees"
	"github.com/neutron-org/gravity-relayer/internal/metrics"
	"github.com/neutron-org/gravity-relayer/internal/readiness"
	"github.com/neutron-org/gravity-relayer/internal/relay"
)

// StartOptions are the start command flags.
type StartOptions struct {
	// EthereumKey is a hex private key or the name of a key in the keystore.
	EthereumKey string
	// Mode overrides the configured relayer mode when set.
	Mode string
}

// Bootstrap turns the configuration into a running relay loop. Stages run strictly in order and
// the first failing stage aborts the sequence.
type Bootstrap struct {
	cfg         config.RelayerConfig
	deps        *DependencyContainer
	status      *StatusTracker
	logRegistry *nlogger.Registry
	logger      *zap.Logger
}

func NewBootstrap(cfg config.RelayerConfig, deps *DependencyContainer, status *StatusTracker, logRegistry *nlogger.Registry) *Bootstrap {
	return &Bootstrap{
		cfg:         cfg,
		deps:        deps,
		status:      status,
		logRegistry: logRegistry,
		logger:      logRegistry.Get(AppContext),
	}
}

// Run blocks until the relay loop returns. A nil error means the loop stopped gracefully.
func (b *Bootstrap) Run(ctx context.Context, opts StartOptions) error {
	resolved, err := runStage(b, StageConfig, func() (*config.Resolved, error) {
		return config.Resolve(b.cfg, opts.Mode, opts.EthereumKey, b.logRegistry.Get(ConfigContext))
	})
	if err != nil {
		return err
	}
	metrics.SetContractFilterSize(resolved.ContractFilter.Len())
	b.status.setResolved(resolved.Mode, resolved.ContractAddress, resolved.ContractFilter)

	conns, err := runStage(b, StageConnections, func() (*connections.Connections, error) {
		conns := b.deps.GetConnectionFactory().CreateRPCConnections(ctx, connections.Params{
			Prefix:      b.cfg.Cosmos.Prefix,
			CosmosGRPC:  b.cfg.Cosmos.GRPC,
			EthereumRPC: b.cfg.Ethereum.RPC,
			Timeout:     b.cfg.ConnectionTimeout,
		})
		if err := conns.Require(); err != nil {
			conns.Close()
			return nil, err
		}
		return conns, nil
	})
	if err != nil {
		return err
	}
	defer conns.Close()

	chainID, err := runStage(b, StageChainID, func() (uint64, error) {
		return ethereum.QueryChainID(ctx, conns.EthProvider)
	})
	if err != nil {
		return err
	}
	b.status.setChainID(chainID)

	signer, err := runStage(b, StageSigner, func() (*ethereum.SignerClient, error) {
		return ethereum.NewSignerClient(conns.EthProvider, resolved.PrivateKey, chainID)
	})
	if err != nil {
		return err
	}
	// the key is not needed past this point
	resolved.PrivateKey = nil

	paymentAddress := resolvePaymentAddress(resolved.PaymentAddress, signer.Address(), b.logRegistry.Get(SignerContext))
	b.status.setAddresses(signer.Address(), paymentAddress)

	b.logger.Info("Starting Relayer")
	b.logger.Info("Ethereum Address", zap.String("address", signer.Address().Hex()), zap.Uint64("chain_id", chainID))

	gate := b.deps.GetGate()
	synced, err := runStage(b, StageCosmosSync, func() (*readiness.Synced, error) {
		return gate.WaitForCosmosNodeReady(ctx, conns.Contact)
	})
	if err != nil {
		return err
	}
	b.status.setCosmosHeight(synced.Height())

	if _, err := runStage(b, StageEthLiveness, func() (struct{}, error) {
		return struct{}{}, gate.CheckForEth(ctx, synced, signer)
	}); err != nil {
		return err
	}

	feeManager, err := runStage(b, StageFeeManager, func() (fees.FeeManager, error) {
		return b.deps.GetFeeManagerFactory().NewFeeManager(ctx, resolved.Mode, fees.Config{
			APIURL:           b.cfg.Relayer.FeeAPIURL,
			HTTPTimeout:      b.cfg.Relayer.FeeAPITimeout,
			FilePath:         b.cfg.Relayer.FeeFilePath,
			ProfitMultiplier: b.cfg.Relayer.ProfitMultiplier,
			Contracts:        resolved.ContractFilter.GetContracts(),
		})
	})
	if err != nil {
		return err
	}

	relayCtx := &relay.Context{
		EthClient:          signer,
		GRPC:               conns.GRPC,
		CosmosPrefix:       b.cfg.Cosmos.Prefix,
		ContractAddress:    resolved.ContractAddress,
		PaymentAddress:     paymentAddress,
		GasPriceMultiplier: b.cfg.Ethereum.GasPriceMultiplier,
		FeeManager:         feeManager,
		GasMultiplier:      b.cfg.Ethereum.GasMultiplier,
		BlocksToSearch:     b.cfg.Ethereum.BlocksToSearch,
		ContractFilter:     resolved.ContractFilter,
	}

	b.status.setStage(StageRelayLoop)
	if err := b.deps.GetRelayLoop().Run(ctx, relayCtx); err != nil {
		b.status.setError(err)
		return fmt.Errorf("relay loop exited with an error: %w", err)
	}

	b.logger.Info("relay loop stopped")
	return nil
}

// resolvePaymentAddress substitutes the zero address with the signing address.
func resolvePaymentAddress(configured, signing common.Address, logger *zap.Logger) common.Address {
	if configured == (common.Address{}) {
		logger.Info("relayer payment address is zero, use signing ethereum address instead",
			zap.String("address", signing.Hex()))
		return signing
	}
	return configured
}

// runStage runs one startup stage, recording its duration and outcome.
func runStage[T any](b *Bootstrap, stage string, fn func() (T, error)) (T, error) {
	b.status.setStage(stage)
	start := time.Now()

	res, err := fn()
	if err != nil {
		metrics.AddFailedStage(stage, time.Since(start).Seconds())
		b.status.setError(err)
		b.logger.Error("startup stage failed", zap.String("stage", stage), zap.Error(err))
		return res, fmt.Errorf("%s: %w", stage, err)
	}

	metrics.AddSuccessStage(stage, time.Since(start).Seconds())
	b.logger.Debug("startup stage done", zap.String("stage", stage), zap.Duration("took", time.Since(start)))
	return res, nil
}
