package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/app"
)

const (
	ServerContext     = "http"
	StatusResource    = "/status"
	PrometheusMetrics = "/metrics"
)

// StatusSource provides the startup status served on StatusResource.
type StatusSource interface {
	Status() app.Status
}

func Run(ctx context.Context, logRegistry *nlogger.Registry, status StatusSource, listenAddr string) error {
	server := &http.Server{
		Addr:              listenAddr,
		Handler:           Router(logRegistry, status),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger := logRegistry.Get(ServerContext)
	errch := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				logger.Error("failed to serve http", zap.Error(err))
				errch <- err
			}
		}
	}()

	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down the api http")
	webserverCtx, cancelWebserverCtx := context.WithTimeout(context.Background(), time.Second*5)
	defer cancelWebserverCtx()
	if err := server.Shutdown(webserverCtx); err != nil {
		logger.Error("failed to shutdown api http gracefully", zap.Error(err))
		return nil
	}

	logger.Info("api http shut down successfully")
	return nil
}

func Router(logRegistry *nlogger.Registry, status StatusSource) *mux.Router {
	promHandler := NewPromWrapper(logRegistry, status)
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc(StatusResource, startupStatus(logRegistry.Get(ServerContext), status)).Methods(http.MethodGet)
	router.Handle(PrometheusMetrics, promHandler)
	return router
}

func startupStatus(logger *zap.Logger, status StatusSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(status.Status()); err != nil {
			logger.Error("failed to encode startup status", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
		}
	}
}
