package dates

import "time"

// DateRange is an inclusive span of calendar days. A zero Start or End leaves
// that side unbounded.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the day t falls inside the range. Comparison is by
// calendar day; both endpoints are included.
func (r DateRange) Contains(t time.Time) bool {
	d := midnight(t)
	if !r.Start.IsZero() && d.Before(midnight(r.Start)) {
		return false
	}
	if !r.End.IsZero() && d.After(midnight(r.End)) {
		return false
	}
	return true
}

// ContainsKey reports whether a day-key string falls inside the range.
// Unparseable keys are never contained.
func (r DateRange) ContainsKey(key string) bool {
	t, err := Parse(key)
	if err != nil {
		return false
	}
	return r.Contains(t)
}

// IsUnbounded reports whether the range restricts nothing.
func (r DateRange) IsUnbounded() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Today is the single-day range covering now.
func Today(now time.Time) DateRange {
	d := midnight(now)
	return DateRange{Start: d, End: d}
}

// ThisWeek spans Sunday through Saturday of the week containing now.
func ThisWeek(now time.Time) DateRange {
	d := midnight(now)
	start := d.AddDate(0, 0, -int(d.Weekday()))
	return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}

// ThisMonth spans the first through last day of the month containing now.
func ThisMonth(now time.Time) DateRange {
	d := midnight(now)
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// LastMonth spans the calendar month preceding the one containing now.
func LastMonth(now time.Time) DateRange {
	d := midnight(now)
	end := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: end}
}

// Last30Days spans the 30 days ending today, inclusive.
func Last30Days(now time.Time) DateRange {
	d := midnight(now)
	return DateRange{Start: d.AddDate(0, 0, -29), End: d}
}

// ThisQuarter spans the calendar quarter containing now.
func ThisQuarter(now time.Time) DateRange {
	d := midnight(now)
	qStart := time.Month((int(d.Month())-1)/3*3 + 1)
	start := time.Date(d.Year(), qStart, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 3, -1)}
}

// YearToDate spans January 1 of the current year through today.
func YearToDate(now time.Time) DateRange {
	d := midnight(now)
	return DateRange{Start: time.Date(d.Year(), 1, 1, 0, 0, 0, 0, time.UTC), End: d}
}

// Preset resolves a named preset to a range. Unknown names return an
// unbounded range and false.
func Preset(name string, now time.Time) (DateRange, bool) {
	switch name {
	case "today":
		return Today(now), true
	case "week", "this-week":
		return ThisWeek(now), true
	case "month", "this-month":
		return ThisMonth(now), true
	case "last-month":
		return LastMonth(now), true
	case "30d", "last-30":
		return Last30Days(now), true
	case "quarter":
		return ThisQuarter(now), true
	case "ytd":
		return YearToDate(now), true
	}
	return DateRange{}, false
}
