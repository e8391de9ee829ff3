/*
Package compiler lowers the rich per-stop restriction rules into flat GTFS
pickup_type/drop_off_type flags.

The target schema has no origin/destination concept, so trips carrying
Custom rules are split into three materialized trips that together
approximate the restriction: a leading segment where the restricted span
is dropoff-only, a trailing segment where it is pickup-only, and a
full-length bridge where it is closed in both directions for through
passengers. Trips without Custom rules map one-to-one.

Compilation is a pure function of the restriction store and the indexed
visit rows; repeated runs over the same inputs produce identical output.
*/
package compiler
