package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentops/intentctl/schema"
)

func makePoints(n int) []schema.TimelinePoint {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]schema.TimelinePoint, n)
	for i := range points {
		points[i] = schema.TimelinePoint{
			Timestamp:  base.AddDate(0, 0, i),
			Confidence: float64(i) / 10,
		}
	}
	return points
}

func TestLastN(t *testing.T) {
	tests := []struct {
		name   string
		length int
		window int
		want   int
	}{
		{"longer than window", 10, 3, 3},
		{"shorter than window", 2, 3, 2},
		{"exact window", 3, 3, 3},
		{"empty", 0, 3, 0},
		{"zero window", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := makePoints(tt.length)
			got := LastN(points, tt.window)
			assert.Len(t, got, tt.want)
			if tt.want > 0 {
				// Trailing entries in original order.
				assert.Equal(t, points[tt.length-tt.want:], got)
			}
		})
	}
}

func TestLastNIdempotent(t *testing.T) {
	points := makePoints(10)
	once := LastN(points, 3)
	twice := LastN(once, 3)
	assert.Equal(t, once, twice)
}

func TestProjectIntentTimeline(t *testing.T) {
	series := []schema.TimelineSeries{
		{IntentType: "IPO_PREP", Points: makePoints(10)},
		{IntentType: "HIRING", Points: makePoints(2)},
	}

	got := ProjectIntentTimeline(series, 3)

	require.Len(t, got, 2)
	assert.Equal(t, "IPO_PREP", got[0].IntentType, "series order preserved")
	assert.Len(t, got[0].Points, 3)
	assert.Len(t, got[1].Points, 2)

	// Re-projection does not change the result.
	assert.Equal(t, got, ProjectIntentTimeline(got, 3))
}

func TestProjectReadiness(t *testing.T) {
	points := make([]schema.ReadinessPoint, 12)
	for i := range points {
		points[i].RuleHits = i
	}

	got := ProjectReadiness(points, 8)

	require.Len(t, got, 8)
	assert.Equal(t, 4, got[0].RuleHits)
	assert.Equal(t, 11, got[7].RuleHits)
}
