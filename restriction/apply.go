package restriction

import "github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"

// ApplyBulk writes one target rule to a stop across many trips, or clears it
// when rule is nil. The trips come from an editor selection and are not
// guaranteed to share a pattern group, so Custom stop sets are re-clamped
// against each trip's own upstream/downstream stops individually. A trip
// with no valid upstream or downstream simply receives empty sets.
//
// Only the store is mutated; visit rows and the index are left untouched.
func ApplyBulk(store *Store, idx *gtfs.Index, tripIDs []string, stopID string, rule *Rule) {
	for _, tripID := range tripIDs {
		if rule == nil {
			store.Delete(tripID, stopID)
			continue
		}
		store.Set(idx, tripID, stopID, *rule)
	}
}
