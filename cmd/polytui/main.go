// Command polytui is a terminal client for Polymarket prediction markets.
// Without flags it runs the interactive browser; with --agent it performs a
// single read or trade operation and writes one JSON document to standard
// output for programmatic consumers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alanyoungcy/polytui/internal/agent"
	"github.com/alanyoungcy/polytui/internal/config"
	"github.com/alanyoungcy/polytui/internal/gateway"
	"github.com/alanyoungcy/polytui/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "polytui.toml", "path to optional configuration file")
		logLevel   = flag.String("log-level", "", "log level override (debug, info, warn, error)")

		agentMode   = flag.Bool("agent", false, "run in headless agent mode (writes JSON to stdout)")
		listFlag    = flag.Bool("list", false, "list markets (agent mode)")
		limit       = flag.Int("limit", 20, "number of markets to fetch")
		marketID    = flag.String("market-id", "", "get a specific market by condition id")
		orderBookID = flag.String("orderbook", "", "get the order book for a token id")
		priceID     = flag.String("price", "", "get the price for a token id")
		positions   = flag.String("positions", "", "get positions for a wallet address (requires auth)")

		trade      = flag.Bool("trade", false, "place a trade (requires --token-id, --side, --amount, --trade-price)")
		tokenID    = flag.String("token-id", "", "token id for trading")
		side       = flag.String("side", "", "trade side: buy or sell")
		amount     = flag.Float64("amount", 0, "trade amount")
		tradePrice = flag.Float64("trade-price", 0, "limit price for trade (0.0-1.0)")
	)
	flag.Parse()

	// Load configuration (defaults + optional TOML + environment).
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Structured JSON logger on stderr: stdout belongs to the TUI and the
	// agent documents.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gw := gateway.New(gateway.Options{
		GammaHost:   cfg.Polymarket.GammaHost,
		ClobHost:    cfg.Polymarket.ClobHost,
		DataHost:    cfg.Polymarket.DataHost,
		Timeout:     cfg.Polymarket.RequestTimeout.Duration,
		Credentials: cfg.Credentials.Domain(),
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *agentMode {
		opts := agent.Options{
			ListMarkets: *listFlag,
			Limit:       *limit,
			MarketID:    *marketID,
			OrderBook:   *orderBookID,
			Price:       *priceID,
			Positions:   *positions,
			Trade:       *trade,
			TokenID:     *tokenID,
			Side:        *side,
			Amount:      *amount,
			TradePrice:  *tradePrice,
		}
		if err := agent.Run(ctx, gw, opts, os.Stdout, logger); err != nil {
			// The error document has already been written to stdout.
			os.Exit(1)
		}
		return
	}

	logger.Info("starting interactive browser",
		slog.Bool("authenticated", gw.Authenticated()),
		slog.Int("list_limit", cfg.UI.ListLimit),
	)

	program := tea.NewProgram(tui.New(gw, cfg.UI.ListLimit, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// parseLevel maps the configured level name to a slog level, defaulting to
// info.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
