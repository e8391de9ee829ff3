package restriction

import (
	"sort"

	"github.com/samber/lo"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
)

// Key identifies one restriction: a stop on a trip.
type Key struct {
	TripID string
	StopID string
}

// Store is a sparse map of (trip, stop) -> Rule. A missing key is full
// service. The store holds no reference to the feed; clamping happens
// against the index passed to Set.
type Store struct {
	rules map[Key]Rule
}

// NewStore creates an empty restriction store.
func NewStore() *Store {
	return &Store{rules: map[Key]Rule{}}
}

// Set writes a rule for one stop of one trip. Normal rules delete the key.
// Custom stop sets are clamped against the trip's own sequence: members not
// strictly upstream (dropoffOnlyFrom) or strictly downstream (pickupOnlyTo)
// of the stop are dropped without error.
func (s *Store) Set(idx *gtfs.Index, tripID, stopID string, rule Rule) {
	if rule.IsNormal() {
		s.Delete(tripID, stopID)
		return
	}
	rule = rule.Normalize()
	if rule.Mode == Custom {
		rule.DropoffOnlyFrom = clampSet(rule.DropoffOnlyFrom, idx.UpstreamOf(tripID, stopID))
		rule.PickupOnlyTo = clampSet(rule.PickupOnlyTo, idx.DownstreamOf(tripID, stopID))
	}
	s.rules[Key{TripID: tripID, StopID: stopID}] = rule
}

// Get returns the rule at a key, Normal if absent.
func (s *Store) Get(tripID, stopID string) Rule {
	if r, ok := s.rules[Key{TripID: tripID, StopID: stopID}]; ok {
		return r
	}
	return Rule{Mode: Normal}
}

// Delete removes the rule at a key, if any.
func (s *Store) Delete(tripID, stopID string) {
	delete(s.rules, Key{TripID: tripID, StopID: stopID})
}

// Len returns the number of stored rules.
func (s *Store) Len() int { return len(s.rules) }

// Keys returns all keys sorted by (trip_id, stop_id).
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.rules))
	for k := range s.rules {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TripID != keys[j].TripID {
			return keys[i].TripID < keys[j].TripID
		}
		return keys[i].StopID < keys[j].StopID
	})
	return keys
}

// clampSet keeps only members that appear in the trip-relative valid list.
func clampSet(members, valid []string) []string {
	if len(members) == 0 || len(valid) == 0 {
		return nil
	}
	kept := lo.Intersect(members, valid)
	sort.Strings(kept)
	if len(kept) == 0 {
		return nil
	}
	return kept
}
