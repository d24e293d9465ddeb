package fallback

import (
	"encoding/json"
	"fmt"
	"os"

	"fxsummary/internal/domain"
)

// Store reads the bundled rate snapshot that is served when the remote
// provider is unreachable. The file is read-only, so concurrent Load calls
// need no coordination.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

type snapshot struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"`
}

// Load reads and decodes the snapshot. There is no recovery path beneath
// this one, so any failure is returned to the caller boundary.
func (s *Store) Load() (domain.RateSeries, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback snapshot %q: %w", s.path, err)
	}

	var snap snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode fallback snapshot %q: %w", s.path, err)
	}

	series := make(domain.RateSeries, len(snap.Rates))
	for date, quotes := range snap.Rates {
		series[date] = quotes["USD"]
	}
	return series, nil
}
