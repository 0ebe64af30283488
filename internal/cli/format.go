// Package cli provides the command-line interface for the journal dashboard.
package cli

import (
	"fmt"
	"strings"
	"time"
)

// FormatUSD formats a dollar amount with thousands separators, e.g. $1,234.56.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := groupThousands(parts[0])

	result := "$" + intPart + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPnL formats P&L with an explicit sign on gains.
func FormatPnL(pnl float64) string {
	formatted := FormatUSD(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatWinRate formats a 0-100 win rate without a sign.
func FormatWinRate(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatPrice formats a per-contract option price.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatDate formats a day-key for display.
func FormatDate(key, layout string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format(layout)
}

// FormatHoldTime formats a hold duration given in minutes.
func FormatHoldTime(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%.0fm", minutes)
	}
	h := int(minutes) / 60
	m := int(minutes) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// TruncateString shortens a string to max runes with an ellipsis.
func TruncateString(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
