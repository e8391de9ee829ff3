/*
Package gtfs loads GTFS static data and builds the per-trip stop-sequence
index the restriction model depends on.

The index is data-source agnostic: it accepts raw zip bytes, an io.Reader,
a local file path or a URL, or plain stop-time rows built in memory. It keeps
the ordered stop sequence of every trip plus a first-occurrence position map,
which back the upstream/downstream lookups used to clamp origin/destination
restriction sets.

Parse the feed once and keep the index in memory; rebuilding it per request
is wasteful. When the hosting editor changes a trip's stop-time rows it must
call ReplaceTripRows so the derived sequence stays in sync.
*/
package gtfs
