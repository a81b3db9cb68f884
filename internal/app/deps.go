package app

import (
	"context"

	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/config"
	"github.com/neutron-org/gravity-relayer/internal/connections"
	"github.com/neutron-org/gravity-relayer/internal/fees"
	"github.com/neutron-org/gravity-relayer/internal/readiness"
	"github.com/neutron-org/gravity-relayer/internal/relay"
)

// ConnectionFactory opens the RPC connections to both chains.
type ConnectionFactory interface {
	CreateRPCConnections(ctx context.Context, params connections.Params) *connections.Connections
}

// FeeManagerFactory builds the fee strategy for a mode.
type FeeManagerFactory interface {
	NewFeeManager(ctx context.Context, mode config.RelayerMode, cfg fees.Config) (fees.FeeManager, error)
}

type defaultFeeManagerFactory struct {
	logger *zap.Logger
}

func (f defaultFeeManagerFactory) NewFeeManager(ctx context.Context, mode config.RelayerMode, cfg fees.Config) (fees.FeeManager, error) {
	return fees.NewFeeManager(ctx, mode, cfg, f.logger)
}

// DependencyContainer holds the collaborators of the startup sequence that talk to the outside
// world, so tests can swap them.
type DependencyContainer struct {
	connectionFactory ConnectionFactory
	feeManagerFactory FeeManagerFactory
	relayLoop         relay.Loop
	gate              *readiness.Gate
}

func NewDependencyContainer(
	connectionFactory ConnectionFactory,
	feeManagerFactory FeeManagerFactory,
	relayLoop relay.Loop,
	gate *readiness.Gate,
) *DependencyContainer {
	return &DependencyContainer{
		connectionFactory: connectionFactory,
		feeManagerFactory: feeManagerFactory,
		relayLoop:         relayLoop,
		gate:              gate,
	}
}

// NewDefaultDependencyContainer wires the production collaborators.
func NewDefaultDependencyContainer(logRegistry *nlogger.Registry) *DependencyContainer {
	return NewDependencyContainer(
		connections.NewFactory(logRegistry.Get(ConnectionsContext)),
		NewDefaultFeeManagerFactory(logRegistry),
		relay.NewMonitorLoop(logRegistry.Get(RelayLoopContext), relay.LoopSpeed),
		readiness.NewGate(logRegistry.Get(ReadinessContext), readiness.DefaultPollInterval),
	)
}

func NewDefaultFeeManagerFactory(logRegistry *nlogger.Registry) FeeManagerFactory {
	return defaultFeeManagerFactory{logger: logRegistry.Get(FeeManagerContext)}
}

func (c DependencyContainer) GetConnectionFactory() ConnectionFactory {
	return c.connectionFactory
}

func (c DependencyContainer) GetFeeManagerFactory() FeeManagerFactory {
	return c.feeManagerFactory
}

func (c DependencyContainer) GetRelayLoop() relay.Loop {
	return c.relayLoop
}

func (c DependencyContainer) GetGate() *readiness.Gate {
	return c.gate
}
