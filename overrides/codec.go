package overrides

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/restriction"
)

// Record is one restriction entry at the artifact boundary. TripID/StopID
// may be empty when the entry came from a composite-keyed map. Mode is
// deliberately loose: exports write a string, but imports also accept the
// numeric spellings some editors emit.
type Record struct {
	TripID          string   `json:"trip_id,omitempty"`
	StopID          string   `json:"stop_id,omitempty"`
	Mode            any      `json:"mode"`
	DropoffOnlyFrom []string `json:"dropoffOnlyFrom,omitempty"`
	PickupOnlyTo    []string `json:"pickupOnlyTo,omitempty"`
}

type document struct {
	Restrictions json.RawMessage `json:"restrictions"`
}

// Import parses an overrides artifact and applies every entry that matches
// the real stop-time data to the store. Unmatched entries are counted in the
// report, never fatal; the only error returned is a document that is not
// valid JSON in any accepted shape.
func Import(data []byte, idx *gtfs.Index, store *restriction.Store) (*Report, error) {
	records, err := decode(data)
	if err != nil {
		return nil, err
	}
	report := NewReport()
	for _, rec := range records {
		applyRecord(rec, idx, store, report)
	}
	return report, nil
}

// decode accepts the array shape, the composite-key map shape, and either of
// those nested under a top-level "restrictions" field.
func decode(data []byte) ([]Record, error) {
	var arr []Record
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}
	var byKey map[string]Record
	if err := json.Unmarshal(data, &byKey); err == nil {
		// A wrapper object decodes as a map too; unwrap it first.
		var doc document
		if err := json.Unmarshal(data, &doc); err == nil && len(doc.Restrictions) > 0 {
			return decode(doc.Restrictions)
		}
		return flattenKeyed(byKey), nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && len(doc.Restrictions) > 0 {
		return decode(doc.Restrictions)
	}
	return nil, errInvalidDocument
}

var errInvalidDocument = errors.New("overrides document is neither a record array nor a keyed map")

// flattenKeyed turns a composite-keyed map into records, resolving ids from
// the key when the value does not carry them explicitly. Records with an
// unsplittable key keep an empty StopID and are counted downstream.
func flattenKeyed(byKey map[string]Record) []Record {
	records := make([]Record, 0, len(byKey))
	for key, rec := range byKey {
		if rec.TripID == "" || rec.StopID == "" {
			if tripID, stopID, ok := SplitKey(key); ok {
				rec.TripID, rec.StopID = tripID, stopID
			} else {
				rec.TripID, rec.StopID = key, ""
			}
		}
		records = append(records, rec)
	}
	return records
}

func applyRecord(rec Record, idx *gtfs.Index, store *restriction.Store, report *Report) {
	if rec.StopID == "" {
		report.Add(CategoryStopNotFoundInKey, rec.TripID)
		return
	}
	if !idx.HasTrip(rec.TripID) {
		report.Add(CategoryTripNotFound, rec.TripID)
		return
	}
	if !idx.HasStopOnTrip(rec.TripID, rec.StopID) {
		report.Add(CategoryStopNotOnTrip, rec.TripID+"/"+rec.StopID)
		return
	}
	report.Matched++
	store.Set(idx, rec.TripID, rec.StopID, restriction.Rule{
		Mode:            restriction.ParseMode(modeString(rec.Mode)),
		DropoffOnlyFrom: rec.DropoffOnlyFrom,
		PickupOnlyTo:    rec.PickupOnlyTo,
	})
}

// modeString renders the loose JSON mode value as a parseable string.
// Anything unrecognized becomes "", which parses as Normal.
func modeString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.Itoa(int(t))
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "1"
		}
	}
	return ""
}

// Export renders the store as a sorted array-of-records document. The array
// shape is used because it needs no composite key and therefore no
// delimiter that could collide with real identifiers.
func Export(store *restriction.Store) ([]byte, error) {
	keys := store.Keys()
	records := make([]Record, 0, len(keys))
	for _, k := range keys {
		r := store.Get(k.TripID, k.StopID)
		records = append(records, Record{
			TripID:          k.TripID,
			StopID:          k.StopID,
			Mode:            r.Mode.String(),
			DropoffOnlyFrom: r.DropoffOnlyFrom,
			PickupOnlyTo:    r.PickupOnlyTo,
		})
	}
	return json.MarshalIndent(records, "", "  ")
}
