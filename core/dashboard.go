// Package core holds the derived-analytics aggregation layer: scorecard
// folding, watchlist ranking, timeline projection, explainability composition
// and the view orchestration that ties them together. Only the orchestrators
// perform I/O, through the injected gateway.
package core

import (
	"context"
	"strings"
	"time"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/internal/gateway"
	"github.com/intentops/intentctl/schema"
)

// Panel names recorded in the journal.
const (
	intentsPanel   = "intents"
	timelinePanel  = "timeline"
	readinessPanel = "readiness"
	explainPanel   = "explain"
	watchlistPanel = "watchlist"
	portfolioPanel = "portfolio"
)

// driftFeedLine labels evidence that fired without an explicit rule trigger.
const driftFeedLine = "No explicit rule hits; drift-based signal."

// BuildFeed derives the evidence feed from the intent records: the first
// evidence item per intent, with its trigger line. Intents without evidence
// are skipped.
func BuildFeed(intents []schema.IntentRecord) []schema.FeedItem {
	var feed []schema.FeedItem
	for _, intent := range intents {
		if len(intent.Evidence) == 0 {
			continue
		}
		evidence := intent.Evidence[0]
		item := schema.FeedItem{
			IntentType:  intent.IntentType,
			Snippet:     evidence.Snippet,
			TriggerLine: driftFeedLine,
		}
		if len(evidence.Triggers) > 0 {
			item.TriggerLine = "Triggers: " + strings.Join(evidence.Triggers, ", ")
		}
		feed = append(feed, item)
	}
	return feed
}

// journalRun wraps the optional view-run journal so the orchestrators can
// record outcomes without nil checks at every step. Journal failures are
// warnings; they never affect the view.
type journalRun struct {
	store  contract.JournalStore
	runID  int64
	panels int
}

func beginRun(store contract.JournalStore, kind schema.ViewKind, params map[string]any) *journalRun {
	run := &journalRun{store: store}
	if store == nil {
		return run
	}
	id, err := store.BeginView(time.Now(), kind, params)
	if err != nil {
		contract.LogWarn("journal begin", err)
		run.store = nil
		return run
	}
	run.runID = id
	return run
}

func (r *journalRun) record(panel string, state schema.PanelState, detail string) {
	r.panels++
	if r.store == nil {
		return
	}
	if err := r.store.RecordPanel(r.runID, panel, state, detail); err != nil {
		contract.LogWarn("journal panel", err)
	}
}

func (r *journalRun) end() {
	if r.store == nil {
		return
	}
	if err := r.store.EndView(r.runID, time.Now(), r.panels); err != nil {
		contract.LogWarn("journal end", err)
	}
}

// panelState maps a fetched row count to its panel state.
func panelState(rows int) schema.PanelState {
	if rows == 0 {
		return schema.EmptyPanel
	}
	return schema.OKPanel
}

// LoadCompanyView answers "show me everything about company X". The intent
// dashboard must succeed; the timeline, readiness and explain panels are each
// best-effort, so one failing fetch degrades only its own panel.
func LoadCompanyView(ctx context.Context, gw contract.Gateway, journal contract.JournalStore, cfg *contract.Config) (*schema.CompanyView, error) {
	run := beginRun(journal, schema.CompanyViewKind, map[string]any{
		"tenant":  cfg.TenantID,
		"company": cfg.CompanyID,
		"days":    cfg.TimelineDays,
	})
	defer run.end()

	intents, err := gw.IntentDashboard(ctx, cfg.TenantID, cfg.CompanyID)
	if err != nil {
		run.record(intentsPanel, schema.FailedPanel, err.Error())
		return nil, err
	}
	run.record(intentsPanel, panelState(len(intents)), "")

	view := &schema.CompanyView{
		TenantID:  cfg.TenantID,
		CompanyID: cfg.CompanyID,
		Intents:   intents,
		Feed:      BuildFeed(intents),
	}

	if series, err := gw.IntentTimeline(ctx, cfg.TenantID, cfg.CompanyID, cfg.TimelineDays); err != nil {
		view.TimelineState = schema.FailedPanel
		run.record(timelinePanel, schema.FailedPanel, err.Error())
	} else {
		view.Timeline = ProjectIntentTimeline(series, contract.IntentTimelineWindow)
		view.TimelineState = panelState(len(view.Timeline))
		run.record(timelinePanel, view.TimelineState, "")
	}

	if points, err := gw.ReadinessTimeline(ctx, cfg.TenantID, cfg.CompanyID, cfg.TimelineDays); err != nil {
		view.ReadinessState = schema.FailedPanel
		run.record(readinessPanel, schema.FailedPanel, err.Error())
	} else {
		view.Readiness = ProjectReadiness(points, contract.ReadinessTimelineWindow)
		view.ReadinessState = panelState(len(view.Readiness))
		run.record(readinessPanel, view.ReadinessState, "")
	}

	if result, err := gw.Explain(ctx, cfg.TenantID, cfg.CompanyID); err != nil {
		// "No such intent" is a normal empty outcome, not a failure.
		if gateway.IsNotFound(err) {
			view.ExplainState = schema.EmptyPanel
			run.record(explainPanel, schema.EmptyPanel, "")
		} else {
			view.ExplainState = schema.FailedPanel
			run.record(explainPanel, schema.FailedPanel, err.Error())
		}
	} else {
		view.Explain = ComposeExplain(result, cfg.Precision)
		view.ExplainState = schema.OKPanel
		if !view.Explain.HasData {
			view.ExplainState = schema.EmptyPanel
		}
		run.record(explainPanel, view.ExplainState, "")
	}

	return view, nil
}

// LoadTenantView answers "show me everything about tenant Y": the ranked
// watchlist plus the portfolio backtest report. A failed portfolio fetch
// means the report has not been generated yet and renders as a placeholder,
// which is different from a present but empty report.
func LoadTenantView(ctx context.Context, gw contract.Gateway, journal contract.JournalStore, cfg *contract.Config) (*schema.TenantView, error) {
	run := beginRun(journal, schema.TenantViewKind, map[string]any{
		"tenant": cfg.TenantID,
	})
	defer run.end()

	entries, err := gw.Watchlist(ctx, cfg.TenantID)
	if err != nil {
		run.record(watchlistPanel, schema.FailedPanel, err.Error())
		return nil, err
	}
	ranked := RankWatchlist(entries)
	run.record(watchlistPanel, panelState(len(ranked)), "")

	view := &schema.TenantView{
		TenantID:  cfg.TenantID,
		Watchlist: ProjectWatchlistRows(ranked, cfg.Precision, cfg.UseColors),
	}

	if report, err := gw.PortfolioReport(ctx, cfg.TenantID); err != nil {
		view.PortfolioState = schema.FailedPanel
		run.record(portfolioPanel, schema.FailedPanel, err.Error())
	} else {
		view.Portfolio = report
		view.PortfolioState = panelState(len(report.Rows))
		run.record(portfolioPanel, view.PortfolioState, "")
	}

	return view, nil
}
