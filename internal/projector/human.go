// Package projector renders normalized browser data into either a
// human-readable view description or a machine-readable JSON document. It is
// a pure projection: nothing here mutates navigation state, and both render
// paths derive their numbers from the same domain values.
package projector

import (
	"fmt"
	"strings"

	"github.com/alanyoungcy/polytui/internal/browser"
	"github.com/alanyoungcy/polytui/internal/domain"
)

const (
	// listWindow bounds how many list rows the human view shows per screen.
	listWindow = 20
	// bookDepth bounds how many levels per side the human book view shows.
	bookDepth = 10
	// questionWidth truncates question text in the list view.
	questionWidth = 50
	// descriptionWidth truncates the description in the detail view.
	descriptionWidth = 200
)

// MarketList renders the enumerated list window with truncated questions and
// volume/price annotations. The cursor row is marked.
func MarketList(st *browser.State) string {
	markets := st.Visible()

	var b strings.Builder
	b.WriteString("=== ACTIVE MARKETS ===\n\n")

	if len(markets) == 0 {
		b.WriteString("No markets loaded. Press 'r' to refresh.\n")
		return b.String()
	}

	for i, m := range markets {
		if i >= listWindow {
			b.WriteString(fmt.Sprintf("... and %d more\n", len(markets)-listWindow))
			break
		}
		marker := "  "
		if i == st.SelectedIndex {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%2d. %s\n", marker, i+1, Truncate(m.Question, questionWidth)))
		b.WriteString(fmt.Sprintf("      Vol: $%s | Yes: %.1f%%\n\n", groupThousands(m.Volume), m.YesPrice()*100))
	}
	return b.String()
}

// MarketDetail renders the full market fields. Only the description is
// truncated; all numeric values are printed at display precision from the
// same normalized floats the machine view emits.
func MarketDetail(m *domain.Market) string {
	if m == nil {
		return "Select a market to view details\n"
	}

	var b strings.Builder
	b.WriteString("=== MARKET DETAILS ===\n\n")
	b.WriteString("QUESTION:\n" + m.Question + "\n\n")
	b.WriteString("DESCRIPTION:\n" + Truncate(m.Description, descriptionWidth) + "\n\n")
	b.WriteString(fmt.Sprintf("VOLUME: $%.2f\n", m.Volume))
	b.WriteString(fmt.Sprintf("LIQUIDITY: $%.2f\n", m.Liquidity))
	b.WriteString(fmt.Sprintf("END DATE: %s\n\n", orNA(m.EndDate)))

	yes := m.YesPrice()
	b.WriteString(fmt.Sprintf("YES PRICE: %.1f%%\n", yes*100))
	b.WriteString(fmt.Sprintf("NO PRICE: %.1f%%\n\n", (1-yes)*100))

	if len(m.Tokens) > 0 {
		b.WriteString("TOKENS:\n")
		for _, t := range m.Tokens {
			b.WriteString(fmt.Sprintf("  - %s: %.1f%% (ID: %s)\n",
				orNA(t.Outcome), t.Price*100, Truncate(t.TokenID, 20)))
		}
	}
	return b.String()
}

// OrderBook renders ask levels ascending (capped), the spread when both
// sides are non-empty, then bid levels descending (capped).
func OrderBook(book domain.OrderBook) string {
	var b strings.Builder
	b.WriteString("=== ORDER BOOK ===\n\n")

	b.WriteString("ASKS:\n")
	for i, lvl := range book.Asks {
		if i >= bookDepth {
			break
		}
		b.WriteString(fmt.Sprintf("  Size: %.4f @ Price: %.4f\n", lvl.Size, lvl.Price))
	}

	if spread, ok := book.Spread(); ok {
		b.WriteString(fmt.Sprintf("\nSPREAD: %.4f\n", spread))
	}

	b.WriteString("\nBIDS:\n")
	for i, lvl := range book.Bids {
		if i >= bookDepth {
			break
		}
		b.WriteString(fmt.Sprintf("  Size: %.4f @ Price: %.4f\n", lvl.Size, lvl.Price))
	}

	if book.Empty() {
		b.WriteString("\n(no resting orders)\n")
	}
	return b.String()
}

// Truncate shortens s to at most n runes, appending an ellipsis when it cut
// anything. Truncation is strictly a projector concern; normalized data
// always carries the full strings.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// groupThousands formats a non-negative dollar amount with comma separators
// and no decimals, e.g. 1234567.8 -> "1,234,567".
func groupThousands(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
