package connections

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/neutron-org/gravity-relayer/internal/cosmos"
	"github.com/neutron-org/gravity-relayer/internal/ethereum"
)

var (
	ErrMissingHandle   = errors.New("missing connection handle")
	errGRPCNotReady    = errors.New("grpc connection is not ready")
	errGRPCUnreachable = errors.New("grpc endpoint is unreachable")
)

// Params describes the endpoints to connect to. An empty endpoint is not attempted and leaves
// the corresponding handle unset.
type Params struct {
	Prefix      string
	CosmosGRPC  string
	EthereumRPC string
	// Timeout is the budget of each chain, fallback attempts included.
	Timeout time.Duration
}

// Connections holds the live RPC handles of both chains. Any of them may be nil when the
// endpoint could not be reached; Require reports that.
type Connections struct {
	GRPC        *grpc.ClientConn
	Contact     cosmos.Contact
	EthProvider ethereum.Provider
}

// Require fails with ErrMissingHandle unless every handle is set.
func (c *Connections) Require() error {
	var missing []string
	if c.GRPC == nil {
		missing = append(missing, "cosmos grpc")
	}
	if c.Contact == nil {
		missing = append(missing, "cosmos contact")
	}
	if c.EthProvider == nil {
		missing = append(missing, "ethereum rpc")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingHandle, strings.Join(missing, ", "))
	}
	return nil
}

func (c *Connections) Close() {
	if c.GRPC != nil {
		_ = c.GRPC.Close()
	}
	if c.EthProvider != nil {
		c.EthProvider.Close()
	}
}

// Factory creates connections with its own logger.
type Factory struct {
	logger *zap.Logger
}

func NewFactory(logger *zap.Logger) *Factory {
	return &Factory{logger: logger}
}

func (f *Factory) CreateRPCConnections(ctx context.Context, params Params) *Connections {
	return CreateRPCConnections(ctx, f.logger, params)
}

// CreateRPCConnections connects to both chains concurrently. When an endpoint fails, its
// http/https counterpart is tried once within the same budget. Failures are logged and leave
// the handle unset.
func CreateRPCConnections(ctx context.Context, logger *zap.Logger, params Params) *Connections {
	conns := &Connections{}
	var g errgroup.Group

	if params.CosmosGRPC != "" {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, params.Timeout)
			defer cancel()

			conn, err := withFallback(ctx, logger, params.CosmosGRPC, dialCosmos)
			if err != nil {
				logger.Error("failed to connect to cosmos grpc", zap.String("endpoint", params.CosmosGRPC), zap.Error(err))
				return nil
			}
			conns.GRPC = conn
			conns.Contact = cosmos.NewContact(conn, params.Prefix)
			return nil
		})
	}

	if params.EthereumRPC != "" {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, params.Timeout)
			defer cancel()

			client, err := withFallback(ctx, logger, params.EthereumRPC, dialEthereum)
			if err != nil {
				logger.Error("failed to connect to ethereum rpc", zap.String("endpoint", params.EthereumRPC), zap.Error(err))
				return nil
			}
			conns.EthProvider = client
			return nil
		})
	}

	_ = g.Wait()
	return conns
}

func withFallback[T any](ctx context.Context, logger *zap.Logger, endpoint string, dial func(context.Context, string) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for _, candidate := range endpointVariants(endpoint) {
		if ctx.Err() != nil {
			break
		}
		handle, err := dial(ctx, candidate)
		if err == nil {
			logger.Info("connection established", zap.String("endpoint", candidate))
			return handle, nil
		}
		logger.Warn("failed to connect", zap.String("endpoint", candidate), zap.Error(err))
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return zero, lastErr
}

// endpointVariants returns the endpoint followed by its http/https counterpart, if it has one.
func endpointVariants(endpoint string) []string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return []string{endpoint}
	}

	alt := *u
	switch u.Scheme {
	case "http":
		alt.Scheme = "https"
	case "https":
		alt.Scheme = "http"
	default:
		return []string{endpoint}
	}
	return []string{endpoint, alt.String()}
}

func dialEthereum(ctx context.Context, endpoint string) (ethereum.Provider, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}

	// http clients are lazy, make sure the node actually answers
	if _, err := client.BlockNumber(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get ethereum block number: %w", err)
	}

	return client, nil
}

func dialCosmos(ctx context.Context, endpoint string) (*grpc.ClientConn, error) {
	target, creds := grpcTarget(endpoint)
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}

	if err := waitForReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// grpcTarget strips the scheme from endpoint and picks TLS for https. Endpoints without a
// scheme are dialed in plaintext.
func grpcTarget(endpoint string) (string, credentials.TransportCredentials) {
	u, err := url.Parse(endpoint)
	if err == nil && u.Host != "" {
		switch u.Scheme {
		case "https":
			return u.Host, credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
		case "http":
			return u.Host, insecure.NewCredentials()
		}
	}
	return endpoint, insecure.NewCredentials()
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure:
			return errGRPCUnreachable
		case connectivity.Shutdown:
			return errGRPCNotReady
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("%w: last state %s: %w", errGRPCNotReady, state, ctx.Err())
		}
	}
}
