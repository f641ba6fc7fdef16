package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// Placeholder lines for the company dashboard panels.
const (
	noIntentsMessage   = "No intents yet. Ingest signals first."
	noEvidenceMessage  = "No evidence yet. Ingest signals to see why."
	noTimelineMessage  = "No timeline yet. Ingest signals first."
	noReadinessMessage = "No IPO readiness history yet."
	noExplainMessage   = "No IPO_PREP intent found yet. Ingest signals first."
	panelFailedMessage = "Panel unavailable (fetch failed)."
)

// PrintCompanyView outputs the company dashboard, dispatching on the configured format.
func PrintCompanyView(view *schema.CompanyView, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeIntentsCSV(w, view.Intents)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for the company dashboard. Use text, csv, or json")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompanyText(w, view, cfg)
		}, "Wrote table")
	}
}

// writeCompanyText renders every dashboard panel in sequence. Failed panels
// print their placeholder and never hide the panels around them.
func writeCompanyText(w io.Writer, view *schema.CompanyView, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Company %s (tenant %s)\n\n", view.CompanyID, view.TenantID); err != nil {
		return err
	}

	if err := writeIntentsSection(w, view.Intents, cfg); err != nil {
		return err
	}
	if err := writeFeedSection(w, view.Feed, cfg); err != nil {
		return err
	}
	if err := writeTimelineSection(w, view.Timeline, view.TimelineState); err != nil {
		return err
	}
	if err := writeReadinessSection(w, view.Readiness, view.ReadinessState, cfg); err != nil {
		return err
	}
	return writeExplainSection(w, view.Explain, view.ExplainState, cfg)
}

func writeIntentsSection(w io.Writer, intents []schema.IntentRecord, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "== Intents =="); err != nil {
		return err
	}
	if len(intents) == 0 {
		_, err := fmt.Fprintf(w, "%s\n\n", noIntentsMessage)
		return err
	}
	for _, intent := range intents {
		label := confidenceLabel(intent.Confidence, cfg)
		if _, err := fmt.Fprintf(w, "%s  %s (%s)\n    %s\n",
			intent.IntentType,
			contract.FormatPercent(intent.Confidence),
			label,
			contract.TruncateText(intent.Explanation, getMaxSnippetWidth(cfg))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeFeedSection(w io.Writer, feed []schema.FeedItem, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "== Evidence feed =="); err != nil {
		return err
	}
	if len(feed) == 0 {
		_, err := fmt.Fprintf(w, "%s\n\n", noEvidenceMessage)
		return err
	}
	width := getMaxSnippetWidth(cfg)
	for _, item := range feed {
		if _, err := fmt.Fprintf(w, "%s  %s\n    %s\n",
			item.IntentType,
			contract.TruncateText(item.Snippet, width),
			item.TriggerLine); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeTimelineSection(w io.Writer, series []schema.TimelineSeries, state schema.PanelState) error {
	if _, err := fmt.Fprintln(w, "== Intent timeline =="); err != nil {
		return err
	}
	switch state {
	case schema.FailedPanel:
		_, err := fmt.Fprintf(w, "%s\n\n", panelFailedMessage)
		return err
	case schema.EmptyPanel:
		_, err := fmt.Fprintf(w, "%s\n\n", noTimelineMessage)
		return err
	}
	for _, s := range series {
		if _, err := fmt.Fprintf(w, "%s\n", s.IntentType); err != nil {
			return err
		}
		for _, point := range s.Points {
			if _, err := fmt.Fprintf(w, "    %s  %s\n",
				point.Timestamp.Format(time.DateOnly),
				contract.FormatPercent(point.Confidence)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeReadinessSection(w io.Writer, points []schema.ReadinessPoint, state schema.PanelState, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "== IPO readiness =="); err != nil {
		return err
	}
	switch state {
	case schema.FailedPanel:
		_, err := fmt.Fprintf(w, "%s\n\n", panelFailedMessage)
		return err
	case schema.EmptyPanel:
		_, err := fmt.Fprintf(w, "%s\n\n", noReadinessMessage)
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Score", "Drift", "Rules"})
	var data [][]string
	for _, point := range points {
		data = append(data, []string{
			point.Timestamp.Format(time.DateOnly),
			contract.FormatOptFloat(point.ReadinessScore, cfg.Precision),
			contract.FormatOptFloat(point.DriftScore, 2),
			fmt.Sprintf("%d rules", point.RuleHits),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeExplainSection(w io.Writer, explain schema.ExplainView, state schema.PanelState, cfg *contract.Config) error {
	if _, err := fmt.Fprintln(w, "== Why =="); err != nil {
		return err
	}
	switch state {
	case schema.FailedPanel:
		_, err := fmt.Fprintln(w, panelFailedMessage)
		return err
	case schema.EmptyPanel:
		_, err := fmt.Fprintln(w, noExplainMessage)
		return err
	}

	alert := explain.AlertLabel
	if cfg.UseColors && explain.AlertEligible {
		alert = contract.AlertColor.Sprint(alert)
	}
	if _, err := fmt.Fprintf(w, "IPO readiness %s\nConfidence %d%% · %s\n", explain.Readiness, explain.ConfidencePct, alert); err != nil {
		return err
	}
	if explain.AlertReason != "" {
		if _, err := fmt.Fprintf(w, "%s\n", explain.AlertReason); err != nil {
			return err
		}
	}
	width := getMaxSnippetWidth(cfg)
	for _, hit := range explain.RuleHits {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", hit.RuleName, contract.TruncateText(hit.Snippet, width)); err != nil {
			return err
		}
	}
	if len(explain.SourceSnippets) > 0 {
		if _, err := fmt.Fprintln(w, "Sources:"); err != nil {
			return err
		}
		for _, snippet := range explain.SourceSnippets {
			if _, err := fmt.Fprintf(w, "  %s\n", contract.TruncateText(snippet, width)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeIntentsCSV writes the intent cards; the composite panels do not fit a
// flat CSV and are available through JSON output.
func writeIntentsCSV(w io.Writer, intents []schema.IntentRecord) error {
	header := []string{"intent_type", "confidence", "explanation"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, intent := range intents {
			rec := []string{
				intent.IntentType,
				contract.FormatPercent(intent.Confidence),
				intent.Explanation,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
