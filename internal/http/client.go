package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/neutron-org/gravity-relayer/internal/app"
)

const getTimeout = time.Second * 5

// RelayerClient provides high level methods to work with the relayer webserver api
type RelayerClient struct {
	host   *url.URL
	client http.Client
}

// NewRelayerClient takes a host as a single argument and returns a RelayerClient in case of well formatted host arg
// host format is <scheme>://<host>[:<port>], e.g. http://relayer.host, http://relayer.host:10001
func NewRelayerClient(host string) (*RelayerClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("host parsing error: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("host %q must be of the form <scheme>://<host>[:<port>]", host)
	}

	u.Path = ""
	u.RawQuery = ""
	return &RelayerClient{
		host: u,
		client: http.Client{
			Timeout: getTimeout,
		},
	}, nil
}

func (c RelayerClient) GetStatus() (app.Status, error) {
	var status app.Status

	u := *c.host
	u.Path = StatusResource

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return status, fmt.Errorf("failed to build http request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return status, fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return status, fmt.Errorf("got unexpected http response status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(&status); err != nil {
		return status, fmt.Errorf("failed to decode response body: %w", err)
	}

	return status, nil
}
