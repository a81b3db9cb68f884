package http

import (
	"net/http"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/metrics"
)

const MonitoringLoggerContext = "monitoring"

// PromWrapper refreshes the status derived gauges right before every scrape.
type PromWrapper struct {
	promHandler http.Handler
	status      StatusSource
	logger      *zap.Logger
}

func NewPromWrapper(logRegistry *nlogger.Registry, status StatusSource) PromWrapper {
	return PromWrapper{
		promHandler: promhttp.Handler(),
		status:      status,
		logger:      logRegistry.Get(MonitoringLoggerContext),
	}
}

func (p PromWrapper) fillStatusMetrics() {
	status := p.status.Status()
	metrics.SetCurrentStage(status.Stage)
	if status.Error != "" {
		p.logger.Debug("serving metrics of a failed startup", zap.String("stage", status.Stage), zap.String("error", status.Error))
	}
}

func (p PromWrapper) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	p.fillStatusMetrics()
	p.promHandler.ServeHTTP(res, req)
}
