package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	nlogger "github.com/neutron-org/neutron-logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neutron-org/gravity-relayer/internal/app"
	"github.com/neutron-org/gravity-relayer/internal/config"
	relayerhttp "github.com/neutron-org/gravity-relayer/internal/http"
)

const (
	mainContext = "main"

	EthereumKeyFlagName = "ethereum-key"
	ModeFlagName        = "mode"
)

var startOpts app.StartOptions

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the relayer main app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startRelayer(startOpts)
	},
}

func init() {
	startCmd.Flags().StringVarP(&startOpts.EthereumKey, EthereumKeyFlagName, "e", "", "hex private key or keystore name of the Ethereum signing key")
	startCmd.Flags().StringVarP(&startOpts.Mode, ModeFlagName, "m", "", "fee management mode overriding the config: AlwaysRelay, Api or File")
	if err := startCmd.MarkFlagRequired(EthereumKeyFlagName); err != nil {
		log.Fatalf("failed to mark %s flag required: %s", EthereumKeyFlagName, err)
	}
	RootCmd.AddCommand(startCmd)
}

func startRelayer(opts app.StartOptions) error {
	contexts := append([]string{mainContext}, app.LogContexts...)
	contexts = append(contexts, relayerhttp.ServerContext, relayerhttp.MonitoringLoggerContext)
	logRegistry, err := nlogger.NewRegistry(contexts...)
	if err != nil {
		log.Fatalf("couldn't initialize loggers registry: %s", err)
	}
	logger := logRegistry.Get(mainContext)
	logger.Info("gravity-relayer starts...", zap.String("version", app.Version), zap.String("commit", app.Commit))

	cfg, err := config.NewRelayerConfig()
	if err != nil {
		logger.Error("cannot initialize relayer config", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	status := app.NewStatusTracker()

	wg.Add(1)
	go func() {
		defer wg.Done()

		err := relayerhttp.Run(ctx, logRegistry, status, fmt.Sprintf(":%d", cfg.WebserverPort))
		if err != nil {
			logger.Error("WebServer exited with an error", zap.Error(err))
			cancel()
		}
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		select {
		case s := <-sigs:
			logger.Info("Received termination signal, gracefully shutting down...",
				zap.String("signal", s.String()))
			cancel()
		case <-ctx.Done():
		}
	}()

	bootstrap := app.NewBootstrap(cfg, app.NewDefaultDependencyContainer(logRegistry), status, logRegistry)
	runErr := bootstrap.Run(ctx, opts)
	if runErr != nil {
		logger.Error("relayer exited with an error", zap.Error(runErr))
	}

	cancel()
	wg.Wait()

	return runErr
}
