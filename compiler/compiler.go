package compiler

import (
	"github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/restriction"
)

// Suffixes appended to a source trip_id when a Custom rule forces a split.
const (
	SuffixSegA   = "__segA"
	SuffixSegB   = "__segB"
	SuffixBridge = "__bridge"
)

// Compile runs the restriction store over every indexed trip and returns the
// materialized trips for the output feed. Trips are processed in sorted
// trip_id order, so output is deterministic for a given input snapshot.
func Compile(idx *gtfs.Index, store *restriction.Store) Result {
	var res Result
	compiled := map[string]bool{}
	for _, tripID := range idx.TripIDs() {
		compiled[tripID] = true
		rows := idx.RowsFor(tripID)
		if len(rows) == 0 {
			res.Stats.SkippedTrips++
			continue
		}
		res.Stats.SourceTrips++
		trips := compileTrip(idx, store, tripID, rows)
		if len(trips) > 1 {
			res.Stats.SplitTrips++
		}
		res.Trips = append(res.Trips, trips...)
	}
	// trips.txt entries with no stop_times rows produce nothing.
	for _, tripID := range idx.AttributeTripIDs() {
		if !compiled[tripID] {
			res.Stats.SkippedTrips++
		}
	}
	res.Stats.EmittedTrips = len(res.Trips)
	logrus.Debugf("compiled %d source trips into %d trips (%d split, %d skipped)",
		res.Stats.SourceTrips, res.Stats.EmittedTrips, res.Stats.SplitTrips, res.Stats.SkippedTrips)
	return res
}

// compileTrip lowers one source trip. With no Custom rule it emits a single
// trip carrying the simple per-stop mapping. With at least one Custom rule
// it emits the segA/segB/bridge triplet around the custom span.
func compileTrip(idx *gtfs.Index, store *restriction.Store, tripID string, rows []gtfs.StopTimeRow) []MaterializedTrip {
	rulesByPos := map[int]restriction.Rule{}
	firstC, lastC := -1, -1
	for i, row := range rows {
		r := store.Get(tripID, row.StopID)
		if r.IsNormal() {
			continue
		}
		rulesByPos[i] = r
		if r.Mode == restriction.Custom {
			if firstC < 0 {
				firstC = i
			}
			lastC = i
		}
	}

	attrs := idx.AttributesFor(tripID)
	last := len(rows) - 1
	// A single-visit trip has no upstream or downstream side, so a Custom
	// rule on it cannot split; it falls through to the simple mapping,
	// where Custom contributes nothing.
	if firstC < 0 || len(rows) < 2 {
		return []MaterializedTrip{
			materialize(attrs, tripID, rows, rulesByPos, 0, last, 0, 0),
		}
	}

	// The Custom span is lowered by trip duplication: segA serves passengers
	// alighting inside the span, segB passengers boarding inside it, and the
	// bridge passengers travelling across it. Only the mode label of a
	// Custom rule is consulted here; the membership sets are an editor-side
	// concern and are not encoded into the flat flags.
	return []MaterializedTrip{
		materialize(attrs, tripID+SuffixSegA, rows, rulesByPos, 0, lastC, 1, 0),
		materialize(attrs, tripID+SuffixSegB, rows, rulesByPos, firstC, last, 0, 1),
		materialize(attrs, tripID+SuffixBridge, rows, rulesByPos, 0, last, 1, 1),
	}
}

// materialize emits the rows in positions [from, to] as one trip.
// customPickup/customDropoff are the flags applied at Custom positions;
// simple modes always map DropoffOnly -> pickup blocked and PickupOnly ->
// dropoff blocked. Stop sequence numbers are renumbered densely from 1.
func materialize(attrs gtfs.TripAttributes, outID string, rows []gtfs.StopTimeRow, rulesByPos map[int]restriction.Rule, from, to, customPickup, customDropoff int) MaterializedTrip {
	visits := make([]MaterializedVisit, 0, to-from+1)
	for i := from; i <= to; i++ {
		pickup, dropoff := 0, 0
		if r, ok := rulesByPos[i]; ok {
			switch r.Mode {
			case restriction.DropoffOnly:
				pickup = 1
			case restriction.PickupOnly:
				dropoff = 1
			case restriction.Custom:
				pickup, dropoff = customPickup, customDropoff
			}
		}
		visits = append(visits, MaterializedVisit{
			StopID:        rows[i].StopID,
			ArrivalTime:   rows[i].ArrivalTime,
			DepartureTime: rows[i].DepartureTime,
			StopSequence:  len(visits) + 1,
			PickupType:    pickup,
			DropOffType:   dropoff,
		})
	}
	return MaterializedTrip{
		TripID:      outID,
		SourceTrip:  attrs.TripID,
		RouteID:     attrs.RouteID,
		ServiceID:   attrs.ServiceID,
		ShapeID:     attrs.ShapeID,
		Headsign:    attrs.Headsign,
		DirectionID: attrs.DirectionID,
		BlockID:     attrs.BlockID,
		Visits:      visits,
	}
}
