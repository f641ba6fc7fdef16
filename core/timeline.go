package core

import "github.com/intentops/intentctl/schema"

// LastN returns the trailing n elements of points in their original order.
// Shorter inputs come back unchanged, which also makes the operation
// idempotent for a fixed n.
func LastN[T any](points []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// ProjectIntentTimeline truncates every series to its trailing window while
// keeping the series themselves in backend order.
func ProjectIntentTimeline(series []schema.TimelineSeries, window int) []schema.TimelineSeries {
	out := make([]schema.TimelineSeries, 0, len(series))
	for _, s := range series {
		s.Points = LastN(s.Points, window)
		out = append(out, s)
	}
	return out
}

// ProjectReadiness truncates a readiness history to its trailing window.
func ProjectReadiness(points []schema.ReadinessPoint, window int) []schema.ReadinessPoint {
	return LastN(points, window)
}
