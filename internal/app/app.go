package app

var (
	Version = ""
	Commit  = ""
)

const (
	AppContext         = "app"
	ConfigContext      = "config"
	ConnectionsContext = "connections"
	ReadinessContext   = "readiness"
	SignerContext      = "signer"
	FeeManagerContext  = "fee_manager"
	RelayLoopContext   = "relay_loop"
)

// LogContexts lists the logger contexts used by the startup sequence and the relay loop.
var LogContexts = []string{
	AppContext,
	ConfigContext,
	ConnectionsContext,
	ReadinessContext,
	SignerContext,
	FeeManagerContext,
	RelayLoopContext,
}

// Startup stages, in execution order.
const (
	StageConfig      = "config"
	StageConnections = "connections"
	StageChainID     = "chain_id"
	StageSigner      = "signer"
	StageCosmosSync  = "cosmos_sync"
	StageEthLiveness = "eth_liveness"
	StageFeeManager  = "fee_manager"
	StageRelayLoop   = "relay_loop"
)
