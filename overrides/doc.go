/*
Package overrides imports and exports the restriction rule set as a
standalone JSON artifact.

The import side is deliberately tolerant: the collection may be an array of
explicit records or a map keyed by a composite "trip<delim>stop" string
using any of several delimiters. Entries that cannot be matched against the
real stop-time data are counted per category and skipped; valid entries are
still applied (partial success, never an abort).

Export always writes the array-of-records shape, which is delimiter-safe.
*/
package overrides
