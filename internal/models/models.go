// Package models provides domain models for the trading journal.
package models

import "strings"

// OptionType represents the direction of an options contract.
type OptionType string

const (
	OptionCall    OptionType = "Call"
	OptionPut     OptionType = "Put"
	OptionUnknown OptionType = "Unknown"
)

// NormalizeOptionType maps free-text option type values to a canonical
// direction. Values containing "call" or "put" (any case) normalize to the
// respective type; anything else is returned uppercased so unexpected values
// stay visible in breakdowns instead of being dropped.
func NormalizeOptionType(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case upper == "":
		return string(OptionUnknown)
	case strings.Contains(upper, "CALL"):
		return string(OptionCall)
	case strings.Contains(upper, "PUT"):
		return string(OptionPut)
	default:
		return upper
	}
}

// DataSource identifies where the session's records came from.
type DataSource string

const (
	SourceSheets   DataSource = "sheets"
	SourceCSV      DataSource = "csv"
	SourceWorkbook DataSource = "xlsx"
	SourceMock     DataSource = "mock"
)

// RatingCategory is one of the six fixed discipline categories a trader
// self-rates each day.
type RatingCategory string

const (
	RatingPremarket  RatingCategory = "premarket"
	RatingStructure  RatingCategory = "structure"
	RatingFocusList  RatingCategory = "focusList"
	RatingEntry      RatingCategory = "entry"
	RatingManagement RatingCategory = "management"
	RatingPsychology RatingCategory = "psychology"
)

// RatingCategories lists the six categories in canonical display order.
var RatingCategories = []RatingCategory{
	RatingPremarket,
	RatingStructure,
	RatingFocusList,
	RatingEntry,
	RatingManagement,
	RatingPsychology,
}

// Label returns the human-readable name of a rating category.
func (c RatingCategory) Label() string {
	switch c {
	case RatingPremarket:
		return "Premarket Routine"
	case RatingStructure:
		return "Reading Market Structure"
	case RatingFocusList:
		return "Planning Focus List"
	case RatingEntry:
		return "Trade Entry"
	case RatingManagement:
		return "Trade Management"
	case RatingPsychology:
		return "Psychology"
	default:
		return string(c)
	}
}
