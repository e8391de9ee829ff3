package gtfs

import (
	"sort"
	"strings"
)

// Index stores GTFS static data in memory for fast lookups
type Index struct {
	agencyID   string
	agencyTZ   string
	agencyName string                    // agency_name from agency.txt
	tripAttrs  map[string]TripAttributes // trip_id -> trips.txt columns
	tripRows   map[string][]StopTimeRow  // trip_id -> visit rows sorted by stop_sequence
	tripStopSeq map[string][]string      // trip_id -> ordered stop_ids
	tripStopIdx map[string]map[string]int // trip_id -> stop_id -> first-occurrence position
	stopNames  map[string]string         // stop_id -> name
	routeNames map[string]string         // route_id -> short_name
}

// NewIndex creates a new empty index
func NewIndex() *Index {
	return &Index{
		tripAttrs:   map[string]TripAttributes{},
		tripRows:    map[string][]StopTimeRow{},
		tripStopSeq: map[string][]string{},
		tripStopIdx: map[string]map[string]int{},
		stopNames:   map[string]string{},
		routeNames:  map[string]string{},
	}
}

// NewIndexFromRows builds an index directly from stop-time rows, without a
// feed file. Trips referenced only by rows get empty attributes.
func NewIndexFromRows(rows []StopTimeRow) *Index {
	g := NewIndex()
	byTrip := map[string][]StopTimeRow{}
	for _, r := range rows {
		byTrip[r.TripID] = append(byTrip[r.TripID], r)
	}
	for tripID, trip := range byTrip {
		g.ReplaceTripRows(tripID, trip)
	}
	return g
}

// ReplaceTripRows swaps in a trip's visit rows and rebuilds its derived
// stop sequence. The editor calls this on every stop-time change.
func (g *Index) ReplaceTripRows(tripID string, rows []StopTimeRow) {
	sorted := make([]StopTimeRow, len(rows))
	copy(sorted, rows)
	// Stable: equal sequence numbers keep their input order.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Sequence < sorted[j].Sequence })
	g.tripRows[tripID] = sorted

	seq := make([]string, 0, len(sorted))
	idx := make(map[string]int, len(sorted))
	for i, r := range sorted {
		seq = append(seq, r.StopID)
		if _, ok := idx[r.StopID]; !ok {
			idx[r.StopID] = i
		}
	}
	g.tripStopSeq[tripID] = seq
	g.tripStopIdx[tripID] = idx
}

// RemoveTrip drops a trip and its derived data.
func (g *Index) RemoveTrip(tripID string) {
	delete(g.tripAttrs, tripID)
	delete(g.tripRows, tripID)
	delete(g.tripStopSeq, tripID)
	delete(g.tripStopIdx, tripID)
}

// SetTripAttributes records the trips.txt columns for a trip.
func (g *Index) SetTripAttributes(attrs TripAttributes) {
	g.tripAttrs[attrs.TripID] = attrs
}

// SequenceFor returns the ordered stop_ids of a trip, duplicates kept in place.
func (g *Index) SequenceFor(tripID string) []string { return g.tripStopSeq[tripID] }

// RowsFor returns a trip's visit rows sorted by stop_sequence.
func (g *Index) RowsFor(tripID string) []StopTimeRow { return g.tripRows[tripID] }

// AttributesFor returns the trips.txt columns for a trip; zero value if unknown.
func (g *Index) AttributesFor(tripID string) TripAttributes {
	if a, ok := g.tripAttrs[tripID]; ok {
		return a
	}
	return TripAttributes{TripID: tripID}
}

// PositionOf returns the first-occurrence position of a stop on a trip.
func (g *Index) PositionOf(tripID, stopID string) (int, bool) {
	if m, ok := g.tripStopIdx[tripID]; ok {
		idx, ok2 := m[stopID]
		return idx, ok2
	}
	return 0, false
}

// HasTrip reports whether any stop-time rows are indexed for the trip.
func (g *Index) HasTrip(tripID string) bool {
	_, ok := g.tripStopSeq[tripID]
	return ok
}

// HasStopOnTrip reports whether the trip calls at the stop.
func (g *Index) HasStopOnTrip(tripID, stopID string) bool {
	_, ok := g.PositionOf(tripID, stopID)
	return ok
}

// UpstreamOf returns the stops strictly before the first occurrence of stopID
// on the trip; empty if the stop is first or absent.
func (g *Index) UpstreamOf(tripID, stopID string) []string {
	idx, ok := g.PositionOf(tripID, stopID)
	if !ok || idx == 0 {
		return nil
	}
	seq := g.tripStopSeq[tripID]
	out := make([]string, idx)
	copy(out, seq[:idx])
	return out
}

// DownstreamOf returns the stops strictly after the first occurrence of stopID
// on the trip; empty if the stop is last or absent.
func (g *Index) DownstreamOf(tripID, stopID string) []string {
	idx, ok := g.PositionOf(tripID, stopID)
	if !ok {
		return nil
	}
	seq := g.tripStopSeq[tripID]
	if idx+1 >= len(seq) {
		return nil
	}
	out := make([]string, len(seq)-idx-1)
	copy(out, seq[idx+1:])
	return out
}

// TripIDs returns all indexed trip_ids in sorted order.
func (g *Index) TripIDs() []string {
	keys := make([]string, 0, len(g.tripStopSeq))
	for k := range g.tripStopSeq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AttributeTripIDs returns the trip_ids known from trips.txt in sorted
// order, whether or not they have stop-time rows.
func (g *Index) AttributeTripIDs() []string {
	keys := make([]string, 0, len(g.tripAttrs))
	for k := range g.tripAttrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TripCount returns the number of indexed trips.
func (g *Index) TripCount() int { return len(g.tripStopSeq) }

// StopTimeCount returns the total number of indexed visit rows.
func (g *Index) StopTimeCount() int {
	n := 0
	for _, rows := range g.tripRows {
		n += len(rows)
	}
	return n
}

// GetAgencyID returns the agency_id (config override wins over agency.txt).
func (g *Index) GetAgencyID() string { return g.agencyID }

// GetAgencyName returns agency_name from agency.txt.
func (g *Index) GetAgencyName() string { return g.agencyName }

// GetStopName returns the stop_name for a stop_id, empty if unknown.
func (g *Index) GetStopName(stopID string) string { return g.stopNames[stopID] }

// GetRouteShortName returns the route_short_name for a route_id.
func (g *Index) GetRouteShortName(routeID string) string { return g.routeNames[routeID] }

// PatternGroups partitions all trips by identical ordered stop-id lists.
// Groups and their members are sorted, so output order is deterministic.
// The grouping is derived display state; it is recomputed on demand and
// never persisted.
func (g *Index) PatternGroups() [][]string {
	byKey := map[string][]string{}
	for tripID, seq := range g.tripStopSeq {
		// Unit separator cannot occur in GTFS identifiers.
		key := strings.Join(seq, "\x1f")
		byKey[key] = append(byKey[key], tripID)
	}
	groups := make([][]string, 0, len(byKey))
	for _, trips := range byKey {
		sort.Strings(trips)
		groups = append(groups, trips)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}

// PatternGroupOf returns the trips sharing tripID's exact stop sequence,
// including the trip itself; nil if the trip is not indexed.
func (g *Index) PatternGroupOf(tripID string) []string {
	seq, ok := g.tripStopSeq[tripID]
	if !ok {
		return nil
	}
	key := strings.Join(seq, "\x1f")
	var trips []string
	for other, oseq := range g.tripStopSeq {
		if strings.Join(oseq, "\x1f") == key {
			trips = append(trips, other)
		}
	}
	sort.Strings(trips)
	return trips
}
