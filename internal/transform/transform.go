package transform

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Gamax42/tautulli-to-senscritique/internal/catalog"
	"github.com/Gamax42/tautulli-to-senscritique/internal/prompt"
)

// ConvertRow transforms one raw row into at most one output record.
//
// A row with an empty title is skipped: the record is nil and no error is
// raised. A row with an empty year is fatal for the whole run, as is a
// rating/view-count inconsistency. Rows that have been viewed at least once
// ask the confirmer whether the item has actually been watched.
func ConvertRow(logger *slog.Logger, confirmer prompt.Confirmer, universe catalog.Universe, row catalog.Row) (*catalog.Record, error) {
	title := strings.TrimSpace(row.Title)
	if title == "" {
		return nil, nil
	}

	year := strings.TrimSpace(row.Year)
	if year == "" {
		return nil, &MissingYearError{Line: row.Line, Title: title}
	}

	viewCount := NormalizeViewCount(logger, row)
	rating, provided, err := NormalizeRating(logger, row, viewCount)
	if err != nil {
		return nil, err
	}

	record := catalog.Record{
		Universe:      universe,
		Title:         title,
		ReleaseDate:   year,
		Rating:        rating,
		IsWishlisted:  viewCount == 0,
		IsRecommended: provided && rating >= 8,
	}

	if viewCount > 0 {
		message := fmt.Sprintf("Has '%s' (%s) been watched?", title, universe)
		watched, err := confirmer.Confirm(message, true)
		if err != nil {
			return nil, fmt.Errorf("confirm watched status for %q: %w", title, err)
		}
		record.IsDone = watched
	}

	return &record, nil
}

// ConvertTable runs the row loop over one table's rows in order, stopping at
// the first fatal row.
func ConvertTable(logger *slog.Logger, confirmer prompt.Confirmer, universe catalog.Universe, rows []catalog.Row) ([]catalog.Record, error) {
	records := make([]catalog.Record, 0, len(rows))
	for _, row := range rows {
		record, err := ConvertRow(logger, confirmer, universe, row)
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, *record)
		}
	}
	return records, nil
}
