package gtfsodc

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status    string `json:"status"`
	Trips     int    `json:"trips"`
	StopTimes int    `json:"stop_times"`
	Rules     int    `json:"rules"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if workspace != nil {
		resp.Trips = workspace.GTFS.TripCount()
		resp.StopTimes = workspace.GTFS.StopTimeCount()
		resp.Rules = workspace.Rules.Len()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
