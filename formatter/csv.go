package formatter

import (
	"archive/zip"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/compiler"
)

var tripsHeader = []string{"route_id", "service_id", "trip_id", "trip_headsign", "direction_id", "block_id", "shape_id"}

var stopTimesHeader = []string{"trip_id", "arrival_time", "departure_time", "stop_id", "stop_sequence", "pickup_type", "drop_off_type"}

// WriteCSVZip writes the materialized trips as a zip containing trips.txt
// and stop_times.txt. Rows follow the compile result's order, which is
// already deterministic.
func WriteCSVZip(w io.Writer, res compiler.Result) error {
	zw := zip.NewWriter(w)

	trips, err := zw.Create("trips.txt")
	if err != nil {
		return err
	}
	tw := csv.NewWriter(trips)
	if err := tw.Write(tripsHeader); err != nil {
		return err
	}
	for _, t := range res.Trips {
		if err := tw.Write([]string{t.RouteID, t.ServiceID, t.TripID, t.Headsign, t.DirectionID, t.BlockID, t.ShapeID}); err != nil {
			return err
		}
	}
	tw.Flush()
	if err := tw.Error(); err != nil {
		return err
	}

	stopTimes, err := zw.Create("stop_times.txt")
	if err != nil {
		return err
	}
	sw := csv.NewWriter(stopTimes)
	if err := sw.Write(stopTimesHeader); err != nil {
		return err
	}
	for _, t := range res.Trips {
		for _, v := range t.Visits {
			row := []string{
				t.TripID,
				v.ArrivalTime,
				v.DepartureTime,
				v.StopID,
				strconv.Itoa(v.StopSequence),
				strconv.Itoa(v.PickupType),
				strconv.Itoa(v.DropOffType),
			}
			if err := sw.Write(row); err != nil {
				return err
			}
		}
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return err
	}

	return zw.Close()
}
