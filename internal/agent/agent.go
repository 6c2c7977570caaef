// Package agent implements the headless invocation path: one gateway
// operation per process, projected to a single JSON document on standard
// output. Failures become error documents on the same stream and a non-nil
// return so the caller can exit non-zero for machine consumers.
package agent

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alanyoungcy/polytui/internal/domain"
	"github.com/alanyoungcy/polytui/internal/projector"
)

// Options selects which single operation this invocation performs. The
// first populated field wins, in the order the fields are declared; when
// nothing is selected the default is a market listing.
type Options struct {
	MarketID  string // fetch one market by condition id
	OrderBook string // fetch the book for this token id
	Price     string // fetch the price for this token id
	Positions string // fetch holdings for this wallet address
	Trade     bool   // place an order from the trade fields below

	// Listing parameters (also the default operation).
	ListMarkets bool
	Limit       int

	// Trade parameters.
	TokenID    string
	Side       string // "buy" or "sell"
	Amount     float64
	TradePrice float64
}

// Run performs the selected operation and writes its document to out.
// Every failure is emitted as an error document before being returned.
func Run(ctx context.Context, gw domain.DataGateway, opts Options, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "agent"))

	doc, err := dispatch(ctx, gw, opts)
	if err != nil {
		logger.WarnContext(ctx, "agent operation failed", slog.String("error", err.Error()))
		writeDoc(out, projector.ProjectError(err))
		return err
	}

	writeDoc(out, doc)
	return nil
}

// dispatch runs the one operation the options select and projects its result.
func dispatch(ctx context.Context, gw domain.DataGateway, opts Options) (any, error) {
	switch {
	case opts.MarketID != "":
		m, found, err := gw.GetMarket(ctx, opts.MarketID)
		if err != nil {
			return nil, err
		}
		if !found {
			// An empty result is valid; emit an empty listing document.
			return projector.ProjectMarkets(nil), nil
		}
		return projector.ProjectMarket(m), nil

	case opts.OrderBook != "":
		book, err := gw.GetOrderBook(ctx, opts.OrderBook)
		if err != nil {
			return nil, err
		}
		return projector.ProjectBook(book), nil

	case opts.Price != "":
		quote, err := gw.GetPrice(ctx, opts.Price)
		if err != nil {
			return nil, err
		}
		return projector.ProjectPrice(quote), nil

	case opts.Positions != "":
		positions, err := gw.GetPositions(ctx, opts.Positions)
		if err != nil {
			return nil, err
		}
		return projector.ProjectPositions(positions), nil

	case opts.Trade:
		req, err := tradeRequest(opts)
		if err != nil {
			return nil, err
		}
		result, err := gw.PlaceOrder(ctx, req)
		if err != nil {
			return nil, err
		}
		return projector.ProjectOrder(result), nil

	case opts.ListMarkets:
		fallthrough
	default:
		// --list and the no-flag invocation are the same operation.
		limit := opts.Limit
		if limit <= 0 {
			limit = 20
		}
		markets, err := gw.ListMarkets(ctx, domain.ListQuery{Limit: limit, ActiveOnly: true})
		if err != nil {
			return nil, err
		}
		return projector.ProjectMarkets(markets), nil
	}
}

// tradeRequest assembles and pre-validates the order request. Missing
// arguments and out-of-range prices short-circuit before any network call.
func tradeRequest(opts Options) (domain.OrderRequest, error) {
	if opts.TokenID == "" || opts.Side == "" || opts.Amount == 0 || opts.TradePrice == 0 {
		return domain.OrderRequest{}, fmt.Errorf(
			"%w: missing required arguments: --token-id, --side, --amount, --trade-price",
			domain.ErrInvalidOrder)
	}

	var side domain.OrderSide
	switch opts.Side {
	case "buy", "BUY":
		side = domain.OrderSideBuy
	case "sell", "SELL":
		side = domain.OrderSideSell
	default:
		return domain.OrderRequest{}, fmt.Errorf("%w: side must be buy or sell, got %q",
			domain.ErrInvalidOrder, opts.Side)
	}

	req := domain.OrderRequest{
		TokenID: opts.TokenID,
		Side:    side,
		Amount:  opts.Amount,
		Price:   opts.TradePrice,
	}
	if err := req.Validate(); err != nil {
		return domain.OrderRequest{}, err
	}
	return req, nil
}

// writeDoc renders and writes one document followed by a newline. Marshal
// failures fall back to a minimal error object so the stream always carries
// valid JSON.
func writeDoc(out io.Writer, doc any) {
	data, err := projector.MarshalDoc(doc)
	if err != nil {
		fmt.Fprintf(out, "{\n  \"error\": %q\n}\n", err.Error())
		return
	}
	out.Write(data)
	io.WriteString(out, "\n")
}
