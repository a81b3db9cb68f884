package fees

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

const (
	defaultTimeout = time.Second * 10
	vsCurrency     = "eth"
)

// PriceClient fetches ERC20 token prices in ETH from a coingecko compatible
// simple/token_price endpoint.
type PriceClient struct {
	endpoint *url.URL
	client   http.Client
}

// NewPriceClient takes the full endpoint url, e.g.
// https://api.coingecko.com/api/v3/simple/token_price/ethereum
func NewPriceClient(endpoint string, timeout time.Duration) (*PriceClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("price api url parsing error: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("price api url must be absolute, got %q", endpoint)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	u.RawQuery = ""
	return &PriceClient{
		endpoint: u,
		client: http.Client{
			Timeout: timeout,
		},
	}, nil
}

// GetTokenPrices returns the price of every requested contract the api knows about.
func (c *PriceClient) GetTokenPrices(ctx context.Context, contracts []common.Address) (map[common.Address]float64, error) {
	addresses := make([]string, 0, len(contracts))
	for _, contract := range contracts {
		addresses = append(addresses, strings.ToLower(contract.Hex()))
	}

	u := *c.endpoint
	query := url.Values{}
	query.Set("contract_addresses", strings.Join(addresses, ","))
	query.Set("vs_currencies", vsCurrency)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make http request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got unexpected http response status code: %d", res.StatusCode)
	}

	body := make(map[string]map[string]float64)
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	prices := make(map[common.Address]float64, len(body))
	for address, quotes := range body {
		if !common.IsHexAddress(address) {
			continue
		}
		if price, ok := quotes[vsCurrency]; ok {
			prices[common.HexToAddress(address)] = price
		}
	}

	return prices, nil
}
