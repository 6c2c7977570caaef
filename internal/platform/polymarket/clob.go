package polymarket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alanyoungcy/polytui/internal/domain"
)

// ClobClient is the REST client for the Polymarket CLOB (Central Limit
// Order Book) API: order books, prices, and order submission.
//
// Order submission here is a plain pass-through. Real CLOB orders require
// EIP-712 signatures and L2 auth headers; producing those is a collaborator
// responsibility, not this client's.
type ClobClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClobClient creates a new CLOB REST client.
//
// baseURL is the CLOB API root, e.g. "https://clob.polymarket.com".
func NewClobClient(baseURL string, timeout time.Duration) *ClobClient {
	return &ClobClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetOrderBook returns the normalized book for a token.
func (c *ClobClient) GetOrderBook(ctx context.Context, tokenID string) (domain.OrderBook, error) {
	params := url.Values{}
	params.Set("token_id", tokenID)

	body, err := doGet(ctx, c.httpClient, "clob: get order book", c.baseURL+"/book?"+params.Encode())
	if err != nil {
		return domain.OrderBook{}, err
	}

	var apiBook APIOrderBook
	if err := json.Unmarshal(body, &apiBook); err != nil {
		// Undecodable body degrades to an empty book for this token.
		return domain.OrderBook{AssetID: tokenID}, nil
	}

	book := apiBook.Normalize()
	if book.AssetID == "" {
		book.AssetID = tokenID
	}
	return book, nil
}

// GetPrice returns the current price for a token. When the primary /price
// endpoint returns a non-success status, it retries once against /midpoint
// before surfacing failure. It fails only when both sources fail.
func (c *ClobClient) GetPrice(ctx context.Context, tokenID string) (domain.Quote, error) {
	params := url.Values{}
	params.Set("token_id", tokenID)
	query := params.Encode()

	body, primaryErr := doGet(ctx, c.httpClient, "clob: get price", c.baseURL+"/price?"+query)
	if primaryErr == nil {
		return decodeQuote(tokenID, "price", body)
	}

	body, midErr := doGet(ctx, c.httpClient, "clob: get midpoint", c.baseURL+"/midpoint?"+query)
	if midErr == nil {
		return decodeQuote(tokenID, "midpoint", body)
	}

	return domain.Quote{}, fmt.Errorf("clob: price unavailable (midpoint fallback also failed: %v): %w", midErr, primaryErr)
}

// decodeQuote extracts the price from either endpoint's response shape.
func decodeQuote(tokenID, source string, body []byte) (domain.Quote, error) {
	var q APIQuote
	if err := json.Unmarshal(body, &q); err != nil {
		return domain.Quote{}, fmt.Errorf("clob: decode %s response: %w", source, err)
	}
	price := float64(q.Price)
	if price == 0 {
		price = float64(q.Mid)
	}
	return domain.Quote{TokenID: tokenID, Price: price, Source: source}, nil
}

// PostOrder submits a limit order payload to the CLOB API and returns the
// result. The request is sent unsigned; the upstream will reject it unless a
// signing collaborator has been configured in front of this client.
func (c *ClobClient) PostOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	payload := map[string]any{
		"token_id":  req.TokenID,
		"side":      string(req.Side),
		"amount":    strconv.FormatFloat(req.Amount, 'f', -1, 64),
		"price":     strconv.FormatFloat(req.Price, 'f', -1, 64),
		"client_id": req.ClientID,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("clob: marshal order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(jsonBody))
	if err != nil {
		return domain.OrderResult{}, &domain.TransportError{Op: "clob: post order", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.OrderResult{}, &domain.TransportError{Op: "clob: post order", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.OrderResult{}, &domain.TransportError{Op: "clob: post order", Err: err}
	}

	if err := checkHTTPStatus("clob: post order", resp.StatusCode, respBody); err != nil {
		return domain.OrderResult{}, err
	}

	var apiResult APIOrderResult
	if err := json.Unmarshal(respBody, &apiResult); err != nil {
		return domain.OrderResult{}, fmt.Errorf("clob: decode order result: %w", err)
	}

	return domain.OrderResult{
		Success: apiResult.Success,
		OrderID: apiResult.OrderID,
		Status:  apiResult.Status,
		Message: apiResult.ErrorMsg,
	}, nil
}
