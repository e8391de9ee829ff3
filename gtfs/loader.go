package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/config"
)

// NewIndexFromConfig creates and loads an index from configuration. The
// static source may be a local zip path or an http(s) URL.
func NewIndexFromConfig(cfg config.GTFSConfig) (*Index, error) {
	g := NewIndex()
	g.agencyID = cfg.AgencyID
	if cfg.StaticURL == "" {
		return g, nil
	}
	if strings.HasPrefix(cfg.StaticURL, "http://") || strings.HasPrefix(cfg.StaticURL, "https://") {
		if err := g.loadFromStaticZip(cfg.StaticURL); err != nil {
			return g, err
		}
		return g, nil
	}
	if err := g.loadFromLocalZip(cfg.StaticURL); err != nil {
		return g, err
	}
	return g, nil
}

// NewIndexFromBytes builds an index from an in-memory GTFS zip.
func NewIndexFromBytes(data []byte, agencyID string) (*Index, error) {
	g := NewIndex()
	g.agencyID = agencyID
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return g, err
	}
	return g, g.consumeZip(zr)
}

func (g *Index) loadFromStaticZip(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	tmp, err := os.CreateTemp("", "gtfs-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return g.loadFromLocalZip(tmp.Name())
}

func (g *Index) loadFromLocalZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()
	return g.consumeZip(&zr.Reader)
}

func (g *Index) consumeZip(zr *zip.Reader) error {
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if name == "routes.txt" || name == "trips.txt" || name == "stops.txt" || name == "stop_times.txt" || name == "agency.txt" {
			if err := g.consumeCSV(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Index) consumeCSV(f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}
	switch strings.ToLower(f.Name) {
	case "agency.txt":
		agID := idx("agency_id")
		agTZ := idx("agency_timezone")
		agName := idx("agency_name")
		if len(rec) > 1 {
			if g.agencyID == "" {
				g.agencyID = cell(rec[1], agID)
			}
			g.agencyTZ = cell(rec[1], agTZ)
			g.agencyName = cell(rec[1], agName)
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		for _, row := range rec[1:] {
			if rID >= 0 {
				g.routeNames[cell(row, rID)] = cell(row, rSN)
			}
		}
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		for _, row := range rec[1:] {
			if sID >= 0 {
				g.stopNames[cell(row, sID)] = cell(row, sN)
			}
		}
	case "trips.txt":
		tID := idx("trip_id")
		rID := idx("route_id")
		svc := idx("service_id")
		sh := idx("shape_id")
		hs := idx("trip_headsign")
		dir := idx("direction_id")
		blk := idx("block_id")
		if tID < 0 {
			return nil
		}
		for _, row := range rec[1:] {
			g.tripAttrs[cell(row, tID)] = TripAttributes{
				TripID:      cell(row, tID),
				RouteID:     cell(row, rID),
				ServiceID:   cell(row, svc),
				ShapeID:     cell(row, sh),
				Headsign:    cell(row, hs),
				DirectionID: cell(row, dir),
				BlockID:     cell(row, blk),
			}
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		arrTime := idx("arrival_time")
		depTime := idx("departure_time")
		pickupType := idx("pickup_type")
		dropOffType := idx("drop_off_type")
		if tID < 0 || sID < 0 || sq < 0 {
			return nil
		}
		byTrip := map[string][]StopTimeRow{}
		for _, row := range rec[1:] {
			seq, _ := strconv.Atoi(cell(row, sq))
			pickup := 0
			if v := cell(row, pickupType); v != "" {
				pickup, _ = strconv.Atoi(v)
			}
			dropOff := 0
			if v := cell(row, dropOffType); v != "" {
				dropOff, _ = strconv.Atoi(v)
			}
			trip := cell(row, tID)
			byTrip[trip] = append(byTrip[trip], StopTimeRow{
				TripID:        trip,
				StopID:        cell(row, sID),
				ArrivalTime:   cell(row, arrTime),
				DepartureTime: cell(row, depTime),
				Sequence:      seq,
				PickupType:    pickup,
				DropOffType:   dropOff,
			})
		}
		for trip, rows := range byTrip {
			g.ReplaceTripRows(trip, rows)
		}
	}
	return nil
}
