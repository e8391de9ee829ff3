package gtfsodc

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/formatter"
	"github.com/theoremus-urban-solutions/gtfs-od-compiler/restriction"
)

func handleCompileJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if workspace == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(buildErrorPayload("compile", "no workspace loaded"))
		return
	}
	res := workspace.Compile()
	_, _ = w.Write(formatter.BuildJSON(res))
}

func handleCompileZip(w http.ResponseWriter, r *http.Request) {
	if workspace == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(buildErrorPayload("compile", "no workspace loaded"))
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=\"od-compiled.zip\"")
	res := workspace.Compile()
	_ = formatter.WriteCSVZip(w, res)
}

type summaryResponse struct {
	StopID string            `json:"stop_id"`
	Trips  []string          `json:"trips"`
	State  string            `json:"state"` // none|mixed|uniform
	Rule   *restriction.Rule `json:"rule,omitempty"`
}

// handleSummaryJSON reports whether a set of trips carries one uniform rule
// at a stop. The trip set comes from ?trips=a,b,c, or from ?trip=x which
// expands to x's pattern group.
func handleSummaryJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if workspace == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(buildErrorPayload("summary", "no workspace loaded"))
		return
	}
	stopID := r.URL.Query().Get("stop")
	if stopID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("summary", "stop query parameter is required"))
		return
	}
	var trips []string
	if raw := r.URL.Query().Get("trips"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				trips = append(trips, t)
			}
		}
	} else if trip := r.URL.Query().Get("trip"); trip != "" {
		trips = workspace.GTFS.PatternGroupOf(trip)
	}

	rule, state := restriction.Summarize(workspace.Rules, trips, stopID)
	resp := summaryResponse{StopID: stopID, Trips: trips, State: summaryStateName(state)}
	if state == restriction.SummaryUniform {
		resp.Rule = &rule
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func summaryStateName(s restriction.SummaryState) string {
	switch s {
	case restriction.SummaryMixed:
		return "mixed"
	case restriction.SummaryUniform:
		return "uniform"
	default:
		return "none"
	}
}

func buildErrorPayload(call, msg string) []byte {
	b, _ := json.Marshal(map[string]string{"call": call, "error": msg})
	return b
}
