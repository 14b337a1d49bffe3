package transform

import "fmt"

// MissingYearError reports a row that has a title but no release year. It
// aborts the entire run.
type MissingYearError struct {
	Line  int
	Title string
}

func (e *MissingYearError) Error() string {
	return fmt.Sprintf("row %d: missing 'year' for title %q", e.Line, e.Title)
}

// ConsistencyError reports a row whose rating is positive while its view
// count is zero. Something that was never viewed cannot carry a rating, so
// the entire run aborts.
type ConsistencyError struct {
	Line      int
	Title     string
	Rating    float64
	ViewCount int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("row %d: title %q has userRating %v but viewCount %d; a rating requires at least one view",
		e.Line, e.Title, e.Rating, e.ViewCount)
}
