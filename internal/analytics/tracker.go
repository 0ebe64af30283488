package analytics

import (
	"time"

	"tradelens/internal/dates"
	"tradelens/internal/models"
)

// TrackerCell is one (day, category) rating in the weekly discipline matrix.
type TrackerCell struct {
	Date      string `json:"date"`
	Rating    int    `json:"rating"`
	HasRating bool   `json:"hasRating"`
}

// TrackerRow is one category's Monday-through-Friday row plus its average
// over the days that have a recorded rating.
type TrackerRow struct {
	Category models.RatingCategory `json:"category"`
	Label    string                `json:"label"`
	Cells    []TrackerCell         `json:"cells"` // 5 cells, Mon..Fri
	Average  float64               `json:"average"`
	HasData  bool                  `json:"hasData"`
}

// WeekView is the discipline-rating matrix for one work week.
type WeekView struct {
	WeekStart string       `json:"weekStart"` // the Monday, as a day-key
	Days      []string     `json:"days"`      // 5 day-keys, Mon..Fri
	Rows      []TrackerRow `json:"rows"`
}

// WeekMatrix builds the Mon-Fri discipline matrix for the work week
// containing anchor. Ratings are matched by normalized day-key; a category's
// average counts only the days that recorded a rating, so an unrated Friday
// does not drag the week down.
func WeekMatrix(perf []models.DayPerformance, anchor time.Time) WeekView {
	monday := mondayOf(anchor)
	view := WeekView{WeekStart: dates.KeyOf(monday)}

	byKey := make(map[string]models.DayPerformance, len(perf))
	for _, p := range perf {
		byKey[dates.Key(p.Date)] = p
	}

	for i := 0; i < 5; i++ {
		view.Days = append(view.Days, dates.KeyOf(monday.AddDate(0, 0, i)))
	}

	for _, cat := range models.RatingCategories {
		row := TrackerRow{Category: cat, Label: cat.Label()}
		var sum, n int
		for _, key := range view.Days {
			cell := TrackerCell{Date: key}
			if p, ok := byKey[key]; ok {
				if r := p.Rating(cat); r > 0 {
					cell.Rating = r
					cell.HasRating = true
					sum += r
					n++
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		if n > 0 {
			row.Average = Round2(float64(sum) / float64(n))
			row.HasData = true
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

func mondayOf(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}
