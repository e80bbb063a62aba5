package analysis

// FindDataStart scans the raw table top to bottom and returns the index of
// the first row whose first cell parses as a day-first date. Exported logs
// place a variable-length metadata block before the readings; the date
// column is the only field guaranteed present in every genuine data row and
// unparseable in header rows.
//
// A header row containing a stray date-like string causes a false-positive
// start. Known heuristic limitation, not corrected downstream.
func FindDataStart(table [][]string) (int, error) {
	for i, row := range table {
		if len(row) == 0 {
			continue
		}
		if _, ok := parseDayFirstDate(row[0]); ok {
			return i, nil
		}
	}
	return 0, ErrNoDataStart
}
