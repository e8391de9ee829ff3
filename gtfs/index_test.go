package gtfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
)

func TestIndex_SequenceSortedByStopSequence(t *testing.T) {
	rows := []gtfs.StopTimeRow{
		{TripID: "T1", StopID: "C", Sequence: 30},
		{TripID: "T1", StopID: "A", Sequence: 10},
		{TripID: "T1", StopID: "B", Sequence: 20},
	}
	idx := gtfs.NewIndexFromRows(rows)
	assert.Equal(t, []string{"A", "B", "C"}, idx.SequenceFor("T1"))
}

func TestIndex_StableSortKeepsTieOrder(t *testing.T) {
	rows := []gtfs.StopTimeRow{
		{TripID: "T1", StopID: "A", Sequence: 1},
		{TripID: "T1", StopID: "B", Sequence: 5},
		{TripID: "T1", StopID: "C", Sequence: 5},
		{TripID: "T1", StopID: "D", Sequence: 9},
	}
	idx := gtfs.NewIndexFromRows(rows)
	assert.Equal(t, []string{"A", "B", "C", "D"}, idx.SequenceFor("T1"))
}

func TestIndex_UpstreamDownstream(t *testing.T) {
	rows := []gtfs.StopTimeRow{
		{TripID: "T1", StopID: "A", Sequence: 1},
		{TripID: "T1", StopID: "B", Sequence: 2},
		{TripID: "T1", StopID: "C", Sequence: 3},
		{TripID: "T1", StopID: "D", Sequence: 4},
	}
	idx := gtfs.NewIndexFromRows(rows)

	assert.Empty(t, idx.UpstreamOf("T1", "A"))
	assert.Equal(t, []string{"A", "B"}, idx.UpstreamOf("T1", "C"))
	assert.Equal(t, []string{"D"}, idx.DownstreamOf("T1", "C"))
	assert.Empty(t, idx.DownstreamOf("T1", "D"))
	assert.Empty(t, idx.UpstreamOf("T1", "MISSING"))
	assert.Empty(t, idx.DownstreamOf("T1", "MISSING"))
	assert.Empty(t, idx.UpstreamOf("NOPE", "A"))
}

// A stop repeating within one trip keeps both visits in the flattened list,
// but membership lookups use the first occurrence only.
func TestIndex_RepeatedStopUsesFirstOccurrence(t *testing.T) {
	rows := []gtfs.StopTimeRow{
		{TripID: "LOOP", StopID: "A", Sequence: 1},
		{TripID: "LOOP", StopID: "B", Sequence: 2},
		{TripID: "LOOP", StopID: "A", Sequence: 3},
		{TripID: "LOOP", StopID: "C", Sequence: 4},
	}
	idx := gtfs.NewIndexFromRows(rows)

	assert.Equal(t, []string{"A", "B", "A", "C"}, idx.SequenceFor("LOOP"))
	pos, ok := idx.PositionOf("LOOP", "A")
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	assert.Empty(t, idx.UpstreamOf("LOOP", "A"))
	assert.Equal(t, []string{"B", "A", "C"}, idx.DownstreamOf("LOOP", "A"))
}

func TestIndex_ReplaceTripRowsReindexes(t *testing.T) {
	idx := gtfs.NewIndexFromRows([]gtfs.StopTimeRow{
		{TripID: "T1", StopID: "A", Sequence: 1},
		{TripID: "T1", StopID: "B", Sequence: 2},
	})
	idx.ReplaceTripRows("T1", []gtfs.StopTimeRow{
		{TripID: "T1", StopID: "X", Sequence: 1},
		{TripID: "T1", StopID: "Y", Sequence: 2},
		{TripID: "T1", StopID: "Z", Sequence: 3},
	})

	assert.Equal(t, []string{"X", "Y", "Z"}, idx.SequenceFor("T1"))
	assert.False(t, idx.HasStopOnTrip("T1", "A"))
}

func TestIndex_PatternGroups(t *testing.T) {
	var rows []gtfs.StopTimeRow
	add := func(tripID string, stops ...string) {
		for i, s := range stops {
			rows = append(rows, gtfs.StopTimeRow{TripID: tripID, StopID: s, Sequence: i + 1})
		}
	}
	add("T1", "A", "B", "C")
	add("T3", "A", "B", "C")
	add("T2", "A", "C") // different pattern
	idx := gtfs.NewIndexFromRows(rows)

	groups := idx.PatternGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"T1", "T3"}, groups[0])
	assert.Equal(t, []string{"T2"}, groups[1])

	assert.Equal(t, []string{"T1", "T3"}, idx.PatternGroupOf("T1"))
	assert.Nil(t, idx.PatternGroupOf("UNKNOWN"))
}

func TestIndex_TripIDsSorted(t *testing.T) {
	idx := gtfs.NewIndexFromRows([]gtfs.StopTimeRow{
		{TripID: "B", StopID: "S", Sequence: 1},
		{TripID: "A", StopID: "S", Sequence: 1},
		{TripID: "C", StopID: "S", Sequence: 1},
	})
	assert.Equal(t, []string{"A", "B", "C"}, idx.TripIDs())
}
