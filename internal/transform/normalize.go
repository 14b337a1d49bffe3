package transform

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Gamax42/tautulli-to-senscritique/internal/catalog"
)

// DefaultRating is used when no rating was provided or the provided one
// cannot be parsed.
const DefaultRating = 5

// NormalizeViewCount parses the raw view count. Malformed input logs a
// warning and counts as zero views.
func NormalizeViewCount(logger *slog.Logger, row catalog.Row) int {
	raw := strings.TrimSpace(row.ViewCount)
	count, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid viewCount, treating as 0", "line", row.Line, "value", raw)
		return 0
	}
	return count
}

// NormalizeRating derives the integer rating and whether a rating was
// provided at all. An empty rating means "no rating" and yields the default.
// A malformed rating logs a warning and falls back to the default. A
// successfully parsed positive rating on a row with zero views is a
// ConsistencyError; the check applies only when parsing succeeded.
func NormalizeRating(logger *slog.Logger, row catalog.Row, viewCount int) (rating int, provided bool, err error) {
	raw := strings.TrimSpace(row.UserRating)
	if raw == "" {
		return DefaultRating, false, nil
	}

	value, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		logger.Warn("invalid userRating, using default", "line", row.Line, "value", raw, "default", DefaultRating)
		return DefaultRating, true, nil
	}

	if value > 0 && viewCount == 0 {
		return 0, false, &ConsistencyError{
			Line:      row.Line,
			Title:     strings.TrimSpace(row.Title),
			Rating:    value,
			ViewCount: viewCount,
		}
	}

	return int(math.Round(value)), true, nil
}
