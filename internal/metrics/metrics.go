package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelStage  = "stage"
	labelType   = "type"
	typeSuccess = "success"
	typeFailed  = "failed"
)

var (
	bootstrapStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bootstrap_stage_duration",
		Help:    "A histogram of relayer startup stages duration",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30, 60, 300},
	}, []string{labelStage, labelType})

	startupFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "startup_failures",
		Help: "The total number of fatal startup errors (counter)",
	}, []string{labelStage})

	contractFilterSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contract_filter_size",
		Help: "The number of ERC20 contracts the relayer is restricted to, 0 means all",
	})

	relayLoopIterations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_loop_iterations",
		Help: "The total number of relay loop iterations (counter)",
	}, []string{labelType})

	ethereumHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ethereum_block_height",
		Help: "The latest Ethereum block seen by the relayer",
	})

	cosmosHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cosmos_block_height",
		Help: "The latest Cosmos block seen by the relayer",
	})

	signerBalance = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signer_balance_eth",
		Help: "The balance of the relayer signing address in ETH",
	})

	gasPrice = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ethereum_gas_price_wei",
		Help: "The suggested Ethereum gas price with the gas price multiplier applied",
	})

	currentStage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "startup_stage",
		Help: "Set to 1 for the startup stage the relayer is currently in",
	}, []string{labelStage})
)

func AddSuccessStage(stage string, dur float64) {
	bootstrapStageDuration.With(prometheus.Labels{
		labelStage: stage,
		labelType:  typeSuccess,
	}).Observe(dur)
}

func AddFailedStage(stage string, dur float64) {
	startupFailures.With(prometheus.Labels{
		labelStage: stage,
	}).Inc()
	bootstrapStageDuration.With(prometheus.Labels{
		labelStage: stage,
		labelType:  typeFailed,
	}).Observe(dur)
}

func SetContractFilterSize(size int) {
	contractFilterSize.Set(float64(size))
}

func IncSuccessLoopIteration() {
	relayLoopIterations.With(prometheus.Labels{
		labelType: typeSuccess,
	}).Inc()
}

func IncFailedLoopIteration() {
	relayLoopIterations.With(prometheus.Labels{
		labelType: typeFailed,
	}).Inc()
}

func SetEthereumHeight(height uint64) {
	ethereumHeight.Set(float64(height))
}

func SetCosmosHeight(height uint64) {
	cosmosHeight.Set(float64(height))
}

func SetSignerBalance(eth float64) {
	signerBalance.Set(eth)
}

func SetGasPrice(wei float64) {
	gasPrice.Set(wei)
}

// SetCurrentStage marks stage as the only active startup stage.
func SetCurrentStage(stage string) {
	currentStage.Reset()
	currentStage.With(prometheus.Labels{
		labelStage: stage,
	}).Set(1)
}
