/*
Package restriction models per-trip, per-stop boarding and alighting rules,
including origin/destination-scoped Custom rules.

A rule lives at a (trip_id, stop_id) key; a missing key means full service.
Custom rules carry stop sets that are always clamped against the owning
trip's own stop sequence: dropoffOnlyFrom members must lie strictly upstream
of the stop, pickupOnlyTo members strictly downstream. Out-of-range members
are dropped silently, never reported as errors.

The summarizer and bulk applier operate on pattern groups so the editor can
show and edit many trips sharing a stop sequence as one unit.
*/
package restriction
