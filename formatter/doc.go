// Package formatter renders a compile result as a GTFS feed fragment
// (trips.txt + stop_times.txt in a zip) or as JSON for the HTTP surface.
package formatter
