// Package catalog defines the source and target schemas for the converter.
//
// The source side mirrors the Tautulli CSV export: four named columns
// (title, userRating, viewCount, year) read as raw text. The target side is
// the fixed seven-column SensCritique import schema. Both tables share the
// Universe tag, which records whether a row came from the movies table or
// the TV shows table.
package catalog
