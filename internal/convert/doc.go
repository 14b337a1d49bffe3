// Package convert orchestrates the table-to-table conversion pipeline.
//
// It sequences the provided input tables in fixed order (movies, then TV
// shows), runs the row loop over each, merges the resulting records, and
// performs the single output write. Any fatal error aborts the whole run
// before the output file is created, so a partially-correct file is never
// written. A file lock next to the output keeps concurrent runs from
// clobbering each other.
package convert
