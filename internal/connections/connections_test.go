package connections

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func newEthNode(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if req.Method == "eth_blockNumber" {
			resp["result"] = "0x10"
		} else {
			resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func newCosmosNode(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)
	return lis.Addr().String()
}

func closedAddr(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

// newSilentEthNode accepts requests and never answers them.
func newSilentEthNode(t *testing.T) *httptest.Server {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})
	return server
}

// newSilentCosmosNode accepts TCP connections and never speaks HTTP/2.
func newSilentCosmosNode(t *testing.T) string {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = lis.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range conns {
			_ = conn.Close()
		}
	})
	return lis.Addr().String()
}

func TestCreateRPCConnections(t *testing.T) {
	ethNode := newEthNode(t)
	cosmosAddr := newCosmosNode(t)

	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{
		Prefix:      "gravity",
		CosmosGRPC:  "http://" + cosmosAddr,
		EthereumRPC: ethNode.URL,
		Timeout:     5 * time.Second,
	})
	defer conns.Close()

	require.NoError(t, conns.Require())
	assert.Equal(t, "gravity", conns.Contact.Prefix())

	head, err := conns.EthProvider.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), head)
}

func TestCreateRPCConnectionsUnreachable(t *testing.T) {
	ethNode := newEthNode(t)
	addr := closedAddr(t)

	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{
		Prefix:      "gravity",
		CosmosGRPC:  "http://" + addr,
		EthereumRPC: ethNode.URL,
		Timeout:     5 * time.Second,
	})
	defer conns.Close()

	assert.Nil(t, conns.GRPC)
	assert.Nil(t, conns.Contact)
	assert.NotNil(t, conns.EthProvider)
	assert.ErrorIs(t, conns.Require(), ErrMissingHandle)
}

func TestCreateRPCConnectionsEthereumUnreachable(t *testing.T) {
	cosmosAddr := newCosmosNode(t)

	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{
		CosmosGRPC:  cosmosAddr,
		EthereumRPC: "http://" + closedAddr(t),
		Timeout:     5 * time.Second,
	})
	defer conns.Close()

	assert.NotNil(t, conns.GRPC)
	assert.Nil(t, conns.EthProvider)
	assert.ErrorContains(t, conns.Require(), "ethereum rpc")
}

func TestCreateRPCConnectionsTimeout(t *testing.T) {
	ethNode := newSilentEthNode(t)
	cosmosAddr := newSilentCosmosNode(t)

	timeout := 300 * time.Millisecond
	start := time.Now()
	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{
		Prefix:      "gravity",
		CosmosGRPC:  "http://" + cosmosAddr,
		EthereumRPC: ethNode.URL,
		Timeout:     timeout,
	})
	elapsed := time.Since(start)
	defer conns.Close()

	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, 3*time.Second)

	err := conns.Require()
	assert.ErrorIs(t, err, ErrMissingHandle)
	assert.ErrorContains(t, err, "cosmos grpc, cosmos contact, ethereum rpc")
}

func TestCreateRPCConnectionsFallsBackToPlainScheme(t *testing.T) {
	ethNode := newEthNode(t)
	cosmosAddr := newCosmosNode(t)

	// both nodes only speak plaintext, the https attempts fail the TLS handshake
	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{
		Prefix:      "gravity",
		CosmosGRPC:  "https://" + cosmosAddr,
		EthereumRPC: strings.Replace(ethNode.URL, "http://", "https://", 1),
		Timeout:     5 * time.Second,
	})
	defer conns.Close()

	require.NoError(t, conns.Require())
	assert.Equal(t, cosmosAddr, conns.GRPC.Target())

	head, err := conns.EthProvider.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), head)
}

func TestWithFallback(t *testing.T) {
	var attempts []string
	dial := func(_ context.Context, endpoint string) (string, error) {
		attempts = append(attempts, endpoint)
		if strings.HasPrefix(endpoint, "https://") {
			return "", assert.AnError
		}
		return endpoint, nil
	}

	handle, err := withFallback(context.Background(), zap.NewNop(), "https://localhost:8545", dial)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", handle)
	assert.Equal(t, []string{"https://localhost:8545", "http://localhost:8545"}, attempts)

	attempts = nil
	_, err = withFallback(context.Background(), zap.NewNop(), "wss://localhost:8546", dial)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"wss://localhost:8546"}, attempts)
}

func TestWithFallbackStopsOnExpiredBudget(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := withFallback(ctx, zap.NewNop(), "http://localhost:8545", func(context.Context, string) (string, error) {
		calls++
		return "", assert.AnError
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestCreateRPCConnectionsSkipsEmptyEndpoints(t *testing.T) {
	conns := CreateRPCConnections(context.Background(), zap.NewNop(), Params{Timeout: time.Second})

	err := conns.Require()
	assert.ErrorIs(t, err, ErrMissingHandle)
	assert.ErrorContains(t, err, "cosmos grpc, cosmos contact, ethereum rpc")
}

func TestEndpointVariants(t *testing.T) {
	tests := []struct {
		endpoint string
		expected []string
	}{
		{endpoint: "http://localhost:8545", expected: []string{"http://localhost:8545", "https://localhost:8545"}},
		{endpoint: "https://eth.example.com/rpc", expected: []string{"https://eth.example.com/rpc", "http://eth.example.com/rpc"}},
		{endpoint: "localhost:9090", expected: []string{"localhost:9090"}},
		{endpoint: "ws://localhost:8546", expected: []string{"ws://localhost:8546"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, endpointVariants(tt.endpoint), tt.endpoint)
	}
}

func TestGRPCTarget(t *testing.T) {
	target, creds := grpcTarget("https://grpc.gravity.example:443")
	assert.Equal(t, "grpc.gravity.example:443", target)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)

	target, creds = grpcTarget("http://localhost:9090")
	assert.Equal(t, "localhost:9090", target)
	assert.Equal(t, "insecure", creds.Info().SecurityProtocol)

	target, creds = grpcTarget("localhost:9090")
	assert.Equal(t, "localhost:9090", target)
	assert.Equal(t, "insecure", creds.Info().SecurityProtocol)
}
