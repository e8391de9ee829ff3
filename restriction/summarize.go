package restriction

// SummaryState says whether a pattern group shows one uniform rule at a stop.
type SummaryState int

const (
	// SummaryNone means there was nothing to summarize (empty trip list).
	SummaryNone SummaryState = iota
	// SummaryMixed means the trips disagree; no single rule represents them.
	SummaryMixed
	// SummaryUniform means every trip carries the same rule at the stop.
	SummaryUniform
)

// Summarize inspects the rule each trip carries at one stop and decides
// whether the group can be displayed (and bulk-edited) as a single rule.
// Trips are expected to share a pattern group, so the stop is addressed by
// stop_id. Pure read; the store is never mutated.
//
// Custom rules only summarize as uniform when both stop sets match as
// unordered sets across every trip.
func Summarize(store *Store, tripIDs []string, stopID string) (Rule, SummaryState) {
	if len(tripIDs) == 0 {
		return Rule{Mode: Normal}, SummaryNone
	}
	first := store.Get(tripIDs[0], stopID)
	for _, tripID := range tripIDs[1:] {
		r := store.Get(tripID, stopID)
		if r.Mode != first.Mode {
			return Rule{Mode: Normal}, SummaryMixed
		}
		if first.Mode == Custom && !r.Equal(first) {
			return Rule{Mode: Normal}, SummaryMixed
		}
	}
	return first, SummaryUniform
}
