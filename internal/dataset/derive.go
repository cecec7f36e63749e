package dataset

import "time"

// DeriveTime returns a copy of the table with the Hour, DayOfWeek, Month and
// Year fields computed from each row's Timestamp. The source table is not
// modified. Day-of-week numbering is pinned to Monday=0 .. Sunday=6 (the
// ISO work-week order) so weekday/weekend splits do not depend on the
// platform's first-day convention. Derivation is a pure function of the
// timestamp: running it again on an already-derived table yields identical
// values.
func DeriveTime(t Table) Table {
	out := make(Table, len(t))
	for i, o := range t {
		o.Hour = o.Timestamp.Hour()
		o.DayOfWeek = mondayIndexed(o.Timestamp.Weekday())
		o.Month = int(o.Timestamp.Month())
		o.Year = o.Timestamp.Year()
		out[i] = o
	}
	return out
}

// mondayIndexed converts Go's Sunday=0 weekday to Monday=0 .. Sunday=6.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}
