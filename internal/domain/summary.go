package domain

// RateSeries maps an ISO-8601 calendar date to the EUR→USD rate for that day.
// A zero value means the provider returned no USD quote for the date.
type RateSeries map[string]float64

// Source tags where a summary's rate series came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

// BreakdownMode controls whether the per-day breakdown is included.
type BreakdownMode string

const (
	BreakdownDay  BreakdownMode = "day"
	BreakdownNone BreakdownMode = "none"
)

// DayRate is one row of the per-day breakdown. PctChange is nil for the
// first date in the series.
type DayRate struct {
	Date      string
	Rate      float64
	PctChange *float64
}

type Totals struct {
	StartRate      float64
	EndRate        float64
	TotalPctChange float64
	MeanRate       float64
}

// Summary is the result of summarizing one rate series. Breakdown is nil
// when the caller asked for totals only.
type Summary struct {
	Breakdown []DayRate
	Totals    Totals
	Source    Source
}
