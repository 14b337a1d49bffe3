// Package tabular reads source CSV tables and writes the converted output
// table.
//
// Reading validates that the path is a regular file and that the header
// exposes the four required source columns; column order is irrelevant and
// extra columns are ignored. Writing serializes records in the fixed output
// column order and never touches the destination when there is nothing to
// write.
package tabular
