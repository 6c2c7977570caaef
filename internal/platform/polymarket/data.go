package polymarket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// DataClient is the REST client for the Polymarket Data API, which serves
// per-address holdings.
type DataClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDataClient creates a new Data API client.
//
// baseURL is the Data API root, e.g. "https://data-api.polymarket.com".
func NewDataClient(baseURL string, timeout time.Duration) *DataClient {
	return &DataClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetPositions returns the normalized holdings for a wallet address.
func (d *DataClient) GetPositions(ctx context.Context, address string) ([]domain.Position, error) {
	params := url.Values{}
	params.Set("user", address)

	body, err := doGet(ctx, d.httpClient, "data: get positions", d.baseURL+"/positions?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var apiPositions []APIPosition
	if err := json.Unmarshal(body, &apiPositions); err != nil {
		// Some deployments wrap the array, mirroring the markets listing.
		var wrapped struct {
			Positions []APIPosition `json:"positions"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, nil
		}
		apiPositions = wrapped.Positions
	}

	positions := make([]domain.Position, 0, len(apiPositions))
	for i := range apiPositions {
		positions = append(positions, apiPositions[i].Normalize())
	}
	return positions, nil
}
