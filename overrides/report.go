package overrides

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Diagnostic categories for entries excluded during import.
const (
	CategoryTripNotFound      = "trip_not_found"
	CategoryStopNotFoundInKey = "stop_not_found_in_key"
	CategoryStopNotOnTrip     = "stop_not_on_trip"
)

type categoryInfo struct {
	count    int
	examples []string
}

// Report aggregates the outcome of one overrides import: how many entries
// were applied and how many were excluded, per category, with up to three
// example identifiers each. Excluded entries never abort an import.
type Report struct {
	Matched    int
	categories map[string]*categoryInfo
}

// NewReport creates an empty import report.
func NewReport() *Report {
	return &Report{categories: map[string]*categoryInfo{}}
}

// Add records one excluded entry with an example identifier.
func (r *Report) Add(category, exampleID string) {
	if r.categories[category] == nil {
		r.categories[category] = &categoryInfo{examples: make([]string, 0, 3)}
	}
	info := r.categories[category]
	info.count++
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns the number of excluded entries in a category.
func (r *Report) Count(category string) int {
	if info, ok := r.categories[category]; ok {
		return info.count
	}
	return 0
}

// Excluded returns the total number of excluded entries.
func (r *Report) Excluded() int {
	n := 0
	for _, info := range r.categories {
		n += info.count
	}
	return n
}

// LogAll writes one consolidated log line per category, plus the match count.
func (r *Report) LogAll() {
	logrus.Infof("overrides import: %d entries matched, %d excluded", r.Matched, r.Excluded())
	for _, category := range []string{CategoryTripNotFound, CategoryStopNotFoundInKey, CategoryStopNotOnTrip} {
		info, ok := r.categories[category]
		if !ok {
			continue
		}
		msg := fmt.Sprintf("overrides import: %d entries excluded (%s)", info.count, category)
		if len(info.examples) > 0 {
			msg += fmt.Sprintf(" e.g. %v", info.examples)
		}
		logrus.Warn(msg)
	}
}
