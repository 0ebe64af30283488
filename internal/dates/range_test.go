package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContainsInclusive(t *testing.T) {
	r := DateRange{Start: day(2025, 6, 1), End: day(2025, 6, 30)}
	if !r.Contains(day(2025, 6, 1)) {
		t.Error("start day should be contained")
	}
	if !r.Contains(day(2025, 6, 30)) {
		t.Error("end day should be contained")
	}
	if r.Contains(day(2025, 5, 31)) || r.Contains(day(2025, 7, 1)) {
		t.Error("days outside the range should not be contained")
	}
}

func TestContainsUnbounded(t *testing.T) {
	var r DateRange
	if !r.IsUnbounded() {
		t.Fatal("zero range should be unbounded")
	}
	if !r.Contains(day(1999, 1, 1)) || !r.Contains(day(2099, 1, 1)) {
		t.Error("unbounded range should contain every day")
	}
}

func TestContainsKey(t *testing.T) {
	r := DateRange{Start: day(2025, 6, 1), End: day(2025, 6, 30)}
	if !r.ContainsKey("2025-06-15") {
		t.Error("in-range key should be contained")
	}
	if r.ContainsKey("garbage") {
		t.Error("unparseable key should never be contained")
	}
}

func TestThisWeekStartsSunday(t *testing.T) {
	// 2025-06-04 is a Wednesday.
	r := ThisWeek(day(2025, 6, 4))
	if !r.Start.Equal(day(2025, 6, 1)) {
		t.Errorf("week start = %v, want 2025-06-01", r.Start)
	}
	if !r.End.Equal(day(2025, 6, 7)) {
		t.Errorf("week end = %v, want 2025-06-07", r.End)
	}
}

func TestThisMonth(t *testing.T) {
	r := ThisMonth(day(2025, 2, 14))
	if !r.Start.Equal(day(2025, 2, 1)) || !r.End.Equal(day(2025, 2, 28)) {
		t.Errorf("month range = %v..%v", r.Start, r.End)
	}
}

func TestLastMonthAcrossYearBoundary(t *testing.T) {
	r := LastMonth(day(2025, 1, 10))
	if !r.Start.Equal(day(2024, 12, 1)) || !r.End.Equal(day(2024, 12, 31)) {
		t.Errorf("last month = %v..%v", r.Start, r.End)
	}
}

func TestLast30Days(t *testing.T) {
	r := Last30Days(day(2025, 6, 30))
	if !r.Start.Equal(day(2025, 6, 1)) {
		t.Errorf("start = %v, want 2025-06-01", r.Start)
	}
	if !r.End.Equal(day(2025, 6, 30)) {
		t.Errorf("end = %v, want 2025-06-30", r.End)
	}
}

func TestThisQuarter(t *testing.T) {
	r := ThisQuarter(day(2025, 8, 15))
	if !r.Start.Equal(day(2025, 7, 1)) || !r.End.Equal(day(2025, 9, 30)) {
		t.Errorf("quarter = %v..%v", r.Start, r.End)
	}
}

func TestYearToDate(t *testing.T) {
	r := YearToDate(day(2025, 3, 10))
	if !r.Start.Equal(day(2025, 1, 1)) || !r.End.Equal(day(2025, 3, 10)) {
		t.Errorf("ytd = %v..%v", r.Start, r.End)
	}
}

func TestPreset(t *testing.T) {
	now := day(2025, 6, 4)
	for _, name := range []string{"today", "week", "month", "last-month", "30d", "quarter", "ytd"} {
		if _, ok := Preset(name, now); !ok {
			t.Errorf("Preset(%q) not recognized", name)
		}
	}
	if _, ok := Preset("fortnight", now); ok {
		t.Error("unknown preset should not resolve")
	}
}
