package gtfs

// StopTimeRow is a single stop_times.txt visit: one trip calling at one stop.
// Arrival and departure stay raw strings; time normalization belongs to the
// serialization layer, not this index.
type StopTimeRow struct {
	TripID        string `json:"trip_id"`
	StopID        string `json:"stop_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	Sequence      int    `json:"stop_sequence"`
	PickupType    int    `json:"pickup_type"`
	DropOffType   int    `json:"drop_off_type"`
}

// TripAttributes carries the trips.txt columns a materialized trip inherits
// from its source trip.
type TripAttributes struct {
	TripID      string `json:"trip_id"`
	RouteID     string `json:"route_id"`
	ServiceID   string `json:"service_id"`
	ShapeID     string `json:"shape_id,omitempty"`
	Headsign    string `json:"trip_headsign,omitempty"`
	DirectionID string `json:"direction_id,omitempty"`
	BlockID     string `json:"block_id,omitempty"`
}
