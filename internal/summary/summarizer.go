package summary

import (
	"maps"
	"math"
	"slices"

	"fxsummary/internal/domain"
)

// Summarize turns a rate series into a summary: per-day percent changes in
// chronological order plus aggregate totals. Dates are ISO-8601, so the
// lexicographic sort is chronological. Single pass, no state.
func Summarize(series domain.RateSeries, mode domain.BreakdownMode, source domain.Source) (domain.Summary, error) {
	if len(series) == 0 {
		return domain.Summary{}, domain.ErrNoData
	}

	dates := slices.Sorted(maps.Keys(series))

	breakdown := make([]domain.DayRate, 0, len(dates))
	var sum float64
	for i, date := range dates {
		rate := series[date]
		sum += rate

		var pct *float64
		if i > 0 {
			change := pctChange(rate, series[dates[i-1]])
			pct = &change
		}
		breakdown = append(breakdown, domain.DayRate{Date: date, Rate: rate, PctChange: pct})
	}

	startRate := series[dates[0]]
	endRate := series[dates[len(dates)-1]]

	result := domain.Summary{
		Totals: domain.Totals{
			StartRate:      startRate,
			EndRate:        endRate,
			TotalPctChange: pctChange(endRate, startRate),
			MeanRate:       round4(sum / float64(len(dates))),
		},
		Source: source,
	}
	if mode == domain.BreakdownDay {
		result.Breakdown = breakdown
	}
	return result, nil
}

// pctChange computes ((current - previous) / previous) * 100 rounded to 4
// decimal places. A zero previous rate yields 0.0 so the output stays
// well-formed; this is an output-shape guarantee, not meaningful financial
// math.
func pctChange(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return round4((current - previous) / previous * 100)
}

// round4 rounds halves away from zero; exact ties at the 4th decimal may
// differ from half-to-even rounding by 0.0001.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
