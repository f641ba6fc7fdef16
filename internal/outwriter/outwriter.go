// Package outwriter renders views and reports to the terminal or a file,
// dispatching on the configured output mode.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteCompanyView prints the company dashboard using the configured output format.
func (ow *OutWriter) WriteCompanyView(view *schema.CompanyView, cfg *contract.Config) error {
	return PrintCompanyView(view, cfg)
}

// WriteTenantView prints the tenant dashboard using the configured output format.
func (ow *OutWriter) WriteTenantView(view *schema.TenantView, cfg *contract.Config) error {
	return PrintTenantView(view, cfg)
}

// WriteScorecard prints the backtest scorecard using the configured output format.
func (ow *OutWriter) WriteScorecard(card schema.Scorecard, cfg *contract.Config) error {
	return PrintScorecard(card, cfg)
}

// WriteWatchlist prints the ranked watchlist using the configured output format.
func (ow *OutWriter) WriteWatchlist(rows []schema.WatchlistRow, cfg *contract.Config) error {
	return PrintWatchlist(rows, cfg)
}

// WritePortfolio prints the portfolio report using the configured output format.
func (ow *OutWriter) WritePortfolio(report *schema.PortfolioReport, state schema.PanelState, cfg *contract.Config) error {
	return PrintPortfolio(report, state, cfg)
}

// getMaxSnippetWidth calculates the maximum width for snippet text in table
// output based on terminal width.
func getMaxSnippetWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns plus borders and padding
	available := termWidth - 40
	if available < 20 {
		return 20
	}
	if available > 80 {
		return 80
	}
	return available
}
