package polymarket

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// GammaClient is the REST client for the Polymarket Gamma API, which
// provides market discovery, metadata, and search.
type GammaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGammaClient creates a new Gamma API client.
//
// baseURL is the Gamma API root, e.g. "https://gamma-api.polymarket.com".
func NewGammaClient(baseURL string, timeout time.Duration) *GammaClient {
	return &GammaClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListMarkets returns a normalized page of markets in API response order.
// Malformed entries degrade to defaults inside the normalizer; only the
// transport itself can fail here.
func (g *GammaClient) ListMarkets(ctx context.Context, q domain.ListQuery) ([]domain.Market, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}
	if q.ActiveOnly {
		params.Set("closed", "false")
	}

	body, err := doGet(ctx, g.httpClient, "gamma: list markets", g.baseURL+"/markets?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return DecodeMarkets(body), nil
}

// GetMarket returns a single market looked up by its condition id. An empty
// upstream result is valid: found is false and err is nil.
func (g *GammaClient) GetMarket(ctx context.Context, conditionID string) (domain.Market, bool, error) {
	params := url.Values{}
	params.Set("condition_ids", conditionID)

	body, err := doGet(ctx, g.httpClient, "gamma: get market", g.baseURL+"/markets?"+params.Encode())
	if err != nil {
		return domain.Market{}, false, err
	}

	markets := DecodeMarkets(body)
	if len(markets) == 0 {
		return domain.Market{}, false, nil
	}
	return markets[0], true, nil
}
