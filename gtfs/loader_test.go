package gtfs_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
)

// createMinimalGTFSZip builds an in-memory GTFS zip for loader tests.
func createMinimalGTFSZip(t *testing.T) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	agency, _ := w.Create("agency.txt")
	_, _ = agency.Write([]byte("agency_id,agency_name,agency_url,agency_timezone\nTEST,Test Agency,http://test.com,Europe/Sofia\n"))

	stops, _ := w.Create("stops.txt")
	_, _ = stops.Write([]byte("stop_id,stop_name,stop_lat,stop_lon\nS1,First,42.69,23.32\nS2,Second,42.70,23.33\nS3,Third,42.71,23.34\n"))

	routes, _ := w.Create("routes.txt")
	_, _ = routes.Write([]byte("route_id,agency_id,route_short_name,route_long_name,route_type\nR1,TEST,1,Route 1,3\n"))

	trips, _ := w.Create("trips.txt")
	_, _ = trips.Write([]byte("route_id,service_id,trip_id,trip_headsign,shape_id\nR1,WKDY,T1,Center,SH1\nR1,WKDY,T2,,\n"))

	// T1 rows are deliberately out of order to exercise the sort.
	stopTimes, _ := w.Create("stop_times.txt")
	_, _ = stopTimes.Write([]byte("trip_id,arrival_time,departure_time,stop_id,stop_sequence,pickup_type,drop_off_type\n" +
		"T1,08:10:00,08:10:30,S2,2,,\n" +
		"T1,08:00:00,08:00:30,S1,1,0,0\n" +
		"T1,08:20:00,08:20:30,S3,3,1,0\n"))

	_ = w.Close()
	return buf.Bytes()
}

func TestLoader_FromBytes(t *testing.T) {
	idx, err := gtfs.NewIndexFromBytes(createMinimalGTFSZip(t), "")
	require.NoError(t, err)

	assert.Equal(t, "TEST", idx.GetAgencyID())
	assert.Equal(t, "Test Agency", idx.GetAgencyName())
	assert.Equal(t, "First", idx.GetStopName("S1"))
	assert.Equal(t, "1", idx.GetRouteShortName("R1"))

	assert.Equal(t, []string{"S1", "S2", "S3"}, idx.SequenceFor("T1"))
	rows := idx.RowsFor("T1")
	require.Len(t, rows, 3)
	assert.Equal(t, "08:00:00", rows[0].ArrivalTime)
	assert.Equal(t, 1, rows[2].PickupType)

	attrs := idx.AttributesFor("T1")
	assert.Equal(t, "R1", attrs.RouteID)
	assert.Equal(t, "WKDY", attrs.ServiceID)
	assert.Equal(t, "Center", attrs.Headsign)
	assert.Equal(t, "SH1", attrs.ShapeID)

	// T2 exists in trips.txt but has no stop_times rows.
	assert.Equal(t, []string{"T1"}, idx.TripIDs())
	assert.Equal(t, []string{"T1", "T2"}, idx.AttributeTripIDs())
}

func TestLoader_ConfigAgencyOverridesFeed(t *testing.T) {
	idx, err := gtfs.NewIndexFromBytes(createMinimalGTFSZip(t), "OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "OVERRIDE", idx.GetAgencyID())
}
