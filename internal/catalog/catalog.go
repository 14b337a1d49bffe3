package catalog

import "strconv"

// Universe tags which source table a record came from. It is fixed by the
// table a row was read from, never by row content.
type Universe string

const (
	UniverseMovie  Universe = "movie"
	UniverseTVShow Universe = "tvshow"
)

// Source column names every input table must expose. Column order in the
// file is irrelevant; extra columns are ignored.
const (
	ColumnTitle      = "title"
	ColumnUserRating = "userRating"
	ColumnViewCount  = "viewCount"
	ColumnYear       = "year"
)

// RequiredColumns returns the source columns in reporting order.
func RequiredColumns() []string {
	return []string{ColumnTitle, ColumnUserRating, ColumnViewCount, ColumnYear}
}

// Row is one raw input row. Fields hold the untrimmed cell text as read from
// the source table. Line is the 1-based line number in the source file; the
// header occupies line 1, so the first data row is line 2.
type Row struct {
	Line       int
	Title      string
	UserRating string
	ViewCount  string
	Year       string
}

// Record is one converted output row. A Record is created once, appended to
// the result sequence, and never mutated afterwards.
type Record struct {
	Universe      Universe
	Title         string
	ReleaseDate   string
	Rating        int
	IsWishlisted  bool
	IsRecommended bool
	IsDone        bool
}

// OutputHeader returns the fixed output column order.
func OutputHeader() []string {
	return []string{"universe", "title", "release_date", "rating", "is_wishlisted", "is_recommended", "is_done"}
}

// Fields renders the record in output column order. Booleans become the
// literal tokens "true" and "false"; the rating is a decimal integer.
func (r Record) Fields() []string {
	return []string{
		string(r.Universe),
		r.Title,
		r.ReleaseDate,
		strconv.Itoa(r.Rating),
		strconv.FormatBool(r.IsWishlisted),
		strconv.FormatBool(r.IsRecommended),
		strconv.FormatBool(r.IsDone),
	}
}
