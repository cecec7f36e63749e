package dataset

// Day/night and weekday/weekend boundaries. These are normative for the
// analysis, not configuration: daytime is 07:00 inclusive to 19:00 exclusive,
// and with Monday=0 numbering the last weekday index is Friday=4.
const (
	dayStartHour   = 7
	dayEndHour     = 19
	lastWeekdayDOW = 4
)

// SplitDayNight partitions a derived table into daytime (Hour in [7,19)) and
// nighttime (everything else) tables. The split is total and disjoint: every
// row lands in exactly one of the two results. The input table is unchanged.
func SplitDayNight(t Table) (day, night Table) {
	for _, o := range t {
		if o.Hour >= dayStartHour && o.Hour < dayEndHour {
			day = append(day, o)
		} else {
			night = append(night, o)
		}
	}
	return day, night
}

// SplitWeekdayWeekend partitions a derived table into weekday (Monday-Friday)
// and weekend (Saturday, Sunday) tables. Total and disjoint, input unchanged.
func SplitWeekdayWeekend(t Table) (weekday, weekend Table) {
	for _, o := range t {
		if o.DayOfWeek <= lastWeekdayDOW {
			weekday = append(weekday, o)
		} else {
			weekend = append(weekend, o)
		}
	}
	return weekday, weekend
}

// Filter returns the rows matching pred, as a fresh table.
func Filter(t Table, pred func(Observation) bool) Table {
	var out Table
	for _, o := range t {
		if pred(o) {
			out = append(out, o)
		}
	}
	return out
}
