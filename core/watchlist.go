package core

import (
	"strings"

	"github.com/intentops/intentctl/internal/contract"
	"github.com/intentops/intentctl/schema"
)

// RankWatchlist deduplicates the raw watchlist feed to one entry per company.
// The feed carries one snapshot per pipeline run, so a later entry for the
// same company replaces the earlier value while keeping its first-seen slot.
func RankWatchlist(entries []schema.WatchlistEntry) []schema.WatchlistEntry {
	slots := make(map[string]int, len(entries))
	ranked := make([]schema.WatchlistEntry, 0, len(entries))
	for _, entry := range entries {
		if i, seen := slots[entry.CompanyID]; seen {
			ranked[i] = entry
			continue
		}
		slots[entry.CompanyID] = len(ranked)
		ranked = append(ranked, entry)
	}
	return ranked
}

// ProjectWatchlistRows turns ranked entries into display rows. Absent scores
// render as the sentinel, confidence as a whole percentage, and empty rule
// hits as the sentinel too.
func ProjectWatchlistRows(entries []schema.WatchlistEntry, precision int, useColors bool) []schema.WatchlistRow {
	rows := make([]schema.WatchlistRow, 0, len(entries))
	for _, entry := range entries {
		row := schema.WatchlistRow{
			CompanyID:     entry.CompanyID,
			CompanyName:   entry.CompanyName,
			Readiness:     contract.FormatOptFloat(entry.ReadinessScore, precision),
			Delta:         contract.FormatOptFloat(entry.ScoreDelta, precision),
			Confidence:    formatOptPercent(entry.Confidence),
			Alert:         contract.GetAlertLabel(entry.AlertEligible, useColors),
			AlertEligible: entry.AlertEligible,
			TopRules:      schema.AbsentValue,
		}
		if len(entry.TopRuleHits) > 0 {
			row.TopRules = strings.Join(entry.TopRuleHits, ", ")
		}
		rows = append(rows, row)
	}
	return rows
}

func formatOptPercent(v *float64) string {
	if v == nil {
		return schema.AbsentValue
	}
	return contract.FormatPercent(*v)
}
