package models

// DaySummary is one calendar day's account-level rollup. It comes from its
// own sheet tab and is independent of the individual trade records: the two
// sources are not guaranteed to reconcile. EndBalance is authoritative for
// balance views, ProfitLoss for P&L views.
type DaySummary struct {
	Date              string // day-key source, unique within the set
	StartBalance      float64
	EndBalance        float64
	ProfitLoss        float64
	ProfitLossPercent float64
	TotalTrades       int
	WinningTrades     int
	LosingTrades      int
	OpenPositions     int
	WinRate           float64 // percent, 0-100
	AvgProfitPercent  float64
}

// IsWinningDay reports whether the day closed positive.
func (d DaySummary) IsWinningDay() bool { return d.ProfitLoss > 0 }

// DayPerformance is one calendar day's self-rated discipline scores across
// the six fixed categories, each commonly rated 1-5.
type DayPerformance struct {
	Date             string
	PremarketRoutine int
	Structure        int
	FocusList        int
	Entry            int
	Management       int
	Psychology       int
	Average          int
}

// Rating returns the score recorded for the given category.
func (d DayPerformance) Rating(c RatingCategory) int {
	switch c {
	case RatingPremarket:
		return d.PremarketRoutine
	case RatingStructure:
		return d.Structure
	case RatingFocusList:
		return d.FocusList
	case RatingEntry:
		return d.Entry
	case RatingManagement:
		return d.Management
	case RatingPsychology:
		return d.Psychology
	default:
		return 0
	}
}
