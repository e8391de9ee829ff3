package compiler

// MaterializedVisit is one emitted stop_times.txt row. PickupType and
// DropOffType are always 0 or 1; the compiler never emits 2 or 3.
type MaterializedVisit struct {
	StopID        string `json:"stop_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	StopSequence  int    `json:"stop_sequence"` // dense, 1-based, strictly increasing
	PickupType    int    `json:"pickup_type"`
	DropOffType   int    `json:"drop_off_type"`
}

// MaterializedTrip is one emitted trips.txt row plus its visits. TripID may
// carry a __segA/__segB/__bridge suffix when the source trip was split; all
// other attributes are inherited from the source trip.
type MaterializedTrip struct {
	TripID      string              `json:"trip_id"`
	SourceTrip  string              `json:"source_trip_id"`
	RouteID     string              `json:"route_id"`
	ServiceID   string              `json:"service_id"`
	ShapeID     string              `json:"shape_id,omitempty"`
	Headsign    string              `json:"trip_headsign,omitempty"`
	DirectionID string              `json:"direction_id,omitempty"`
	BlockID     string              `json:"block_id,omitempty"`
	Visits      []MaterializedVisit `json:"visits"`
}

// Stats summarizes one compile pass.
type Stats struct {
	SourceTrips  int `json:"source_trips"`
	EmittedTrips int `json:"emitted_trips"`
	SplitTrips   int `json:"split_trips"`   // source trips expanded into segA/segB/bridge
	SkippedTrips int `json:"skipped_trips"` // trips with zero visit rows
}

// Result is the full output of one compile pass.
type Result struct {
	Trips []MaterializedTrip `json:"trips"`
	Stats Stats              `json:"stats"`
}
