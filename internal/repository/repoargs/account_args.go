package repoargs

// AccountDeltas is applied to a point account's counters in one statement.
// Signed values; the caller is responsible for keeping available_points
// non-negative (the schema CHECK is the last line of defence).
type AccountDeltas struct {
	Total     int64
	Available int64
	Pending   int64
	Used      int64
	Expired   int64
}
