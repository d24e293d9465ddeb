package summary

import (
	"errors"
	"time"

	"fxsummary/internal/domain"
)

var (
	ErrStartRequired = errors.New("start date is required")
	ErrEndRequired   = errors.New("end date is required")
	ErrBadDate       = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrBadBreakdown  = errors.New("breakdown must be either \"day\" or \"none\"")
)

const dateLayout = "2006-01-02"

// Query is a validated summary request.
type Query struct {
	Start time.Time
	End   time.Time
	Mode  domain.BreakdownMode
}

// QueryValidator checks raw request parameters before anything touches the
// network.
type QueryValidator struct{}

func NewValidator() *QueryValidator {
	return &QueryValidator{}
}

// ValidateQuery parses the raw query parameters. An empty breakdown defaults
// to the per-day mode. Range ordering is the service's concern, not ours.
func (v *QueryValidator) ValidateQuery(start, end, breakdown string) (Query, error) {
	if start == "" {
		return Query{}, ErrStartRequired
	}
	if end == "" {
		return Query{}, ErrEndRequired
	}

	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return Query{}, ErrBadDate
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return Query{}, ErrBadDate
	}

	var mode domain.BreakdownMode
	switch domain.BreakdownMode(breakdown) {
	case domain.BreakdownDay, "":
		mode = domain.BreakdownDay
	case domain.BreakdownNone:
		mode = domain.BreakdownNone
	default:
		return Query{}, ErrBadBreakdown
	}

	return Query{Start: startDate, End: endDate, Mode: mode}, nil
}
