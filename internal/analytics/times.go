package analytics

import (
	"regexp"
	"strconv"
	"strings"
)

// clockRe matches the first clock-like token in a free-form time cell,
// e.g. "9:31", "10:05:45", or "12/12/2025 15:05:45 EST".
var clockRe = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::(\d{2}))?`)

// clockOf extracts hour and minute from a journal time cell. When the cell
// carries a date prefix, only the portion containing a colon is considered.
// Returns ok=false when no clock token is present.
func clockOf(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	if i := strings.IndexByte(s, ' '); i > 0 && !strings.Contains(s[:i], ":") {
		for _, part := range strings.Fields(s) {
			if strings.Contains(part, ":") {
				s = part
				break
			}
		}
	}
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// minutesBetween computes the span from a buy time to a sell time within one
// session, in minutes. Returns ok=false when either cell lacks a clock token.
func minutesBetween(buy, sell string) (int, bool) {
	bh, bm, ok := clockOf(buy)
	if !ok {
		return 0, false
	}
	sh, sm, ok := clockOf(sell)
	if !ok {
		return 0, false
	}
	return (sh*60 + sm) - (bh*60 + bm), true
}
