package overrides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/gtfs-od-compiler/overrides"
)

func TestSplitKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantTrip string
		wantStop string
		wantOK   bool
	}{
		{name: "double colon", key: "T1::S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "pipe", key: "T1|S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "slash", key: "T1/S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "em dash", key: "T1—S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "en dash", key: "T1–S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "hyphen", key: "T1-S1", wantTrip: "T1", wantStop: "S1", wantOK: true},
		{name: "hyphen splits at last occurrence", key: "trip-42-S1", wantTrip: "trip-42", wantStop: "S1", wantOK: true},
		{name: "double colon wins over hyphen", key: "trip-42::S1", wantTrip: "trip-42", wantStop: "S1", wantOK: true},
		{name: "fallback trailing token", key: "trip one S1", wantTrip: "trip one", wantStop: "S1", wantOK: true},
		{name: "no split possible", key: "T1S1", wantOK: false},
		{name: "empty", key: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip, stop, ok := overrides.SplitKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTrip, trip)
				assert.Equal(t, tt.wantStop, stop)
			}
		})
	}
}
