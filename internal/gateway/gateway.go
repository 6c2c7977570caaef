// Package gateway provides the concrete DataGateway over the Polymarket
// Gamma, CLOB, and Data REST clients. It owns the authentication capability
// and the fixed per-call timeout; everything above it (browser, agent) only
// sees the domain.DataGateway interface.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alanyoungcy/polytui/internal/domain"
	"github.com/alanyoungcy/polytui/internal/platform/polymarket"
)

// DefaultTimeout bounds every upstream call when the configuration does not
// override it.
const DefaultTimeout = 10 * time.Second

// Options configures a Client.
type Options struct {
	GammaHost   string
	ClobHost    string
	DataHost    string
	Timeout     time.Duration
	Credentials domain.Credentials
	Logger      *slog.Logger
}

// Client implements domain.DataGateway.
type Client struct {
	gamma   *polymarket.GammaClient
	clob    *polymarket.ClobClient
	data    *polymarket.DataClient
	creds   domain.Credentials
	timeout time.Duration
	logger  *slog.Logger
}

var _ domain.DataGateway = (*Client)(nil)

// New creates a gateway Client from the given options. Credentials are
// captured here once; no other component reads them.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		gamma:   polymarket.NewGammaClient(opts.GammaHost, timeout),
		clob:    polymarket.NewClobClient(opts.ClobHost, timeout),
		data:    polymarket.NewDataClient(opts.DataHost, timeout),
		creds:   opts.Credentials,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "gateway")),
	}
}

// Authenticated reports whether the write/authenticated-read surface is
// available for this client.
func (c *Client) Authenticated() bool {
	return c.creds.Authenticated()
}

// ListMarkets returns normalized markets in API response order.
func (c *Client) ListMarkets(ctx context.Context, q domain.ListQuery) ([]domain.Market, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	markets, err := c.gamma.ListMarkets(ctx, q)
	if err != nil {
		c.logger.WarnContext(ctx, "list markets failed", slog.String("error", err.Error()))
		return nil, err
	}
	c.logger.DebugContext(ctx, "listed markets", slog.Int("count", len(markets)))
	return markets, nil
}

// GetMarket looks up one market by condition id.
func (c *Client) GetMarket(ctx context.Context, conditionID string) (domain.Market, bool, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.gamma.GetMarket(ctx, conditionID)
}

// GetOrderBook returns the normalized book for a token.
func (c *Client) GetOrderBook(ctx context.Context, tokenID string) (domain.OrderBook, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.clob.GetOrderBook(ctx, tokenID)
}

// GetPrice returns the current price for a token, with midpoint fallback.
func (c *Client) GetPrice(ctx context.Context, tokenID string) (domain.Quote, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.clob.GetPrice(ctx, tokenID)
}

// GetPositions returns holdings for an address. Requires credentials.
func (c *Client) GetPositions(ctx context.Context, address string) ([]domain.Position, error) {
	if !c.creds.Authenticated() {
		return nil, domain.ErrAuthRequired
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.data.GetPositions(ctx, address)
}

// PlaceOrder validates and submits a limit order. When no credentials are
// present it fails before any network activity.
func (c *Client) PlaceOrder(ctx context.Context, req domain.OrderRequest) (domain.OrderResult, error) {
	if !c.creds.Authenticated() {
		return domain.OrderResult{}, domain.ErrAuthRequired
	}
	if err := req.Validate(); err != nil {
		return domain.OrderResult{}, err
	}
	if req.ClientID == "" {
		req.ClientID = uuid.NewString()
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	c.logger.InfoContext(ctx, "placing order",
		slog.String("client_id", req.ClientID),
		slog.String("token_id", req.TokenID),
		slog.String("side", string(req.Side)),
	)

	result, err := c.clob.PostOrder(ctx, req)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("gateway: place order: %w", err)
	}
	return result, nil
}

// bound derives a context carrying the gateway's fixed timeout.
func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}
