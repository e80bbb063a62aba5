package analysis

import "errors"

// Terminal pipeline errors. Rows with individually bad values are not
// errors; they are silently excluded during cleaning.
var (
	// ErrNoDataStart means no row had a first cell parseable as a date.
	ErrNoDataStart = errors.New("could not find a valid data start row (with a date) in the file")

	// ErrEmptyAfterCleaning means every row was dropped during cleaning.
	ErrEmptyAfterCleaning = errors.New("no valid data rows found after cleaning")
)
