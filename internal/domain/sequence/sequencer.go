// Package sequence derives invoice numbers of the form
// TML/<year>/<roman month>/<3-digit sequence>, e.g. TML/2026/IX/007.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPrefix is the company code leading every invoice number.
const DefaultPrefix = "TML"

var romanMonths = [...]string{
	"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

// RomanMonth returns the roman numeral for a 1..12 month, empty otherwise.
func RomanMonth(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return romanMonths[month]
}

// Prefix builds the year/month prefix for t, trailing slash included:
// "TML/2026/IX/".
func Prefix(company string, t time.Time) string {
	if company == "" {
		company = DefaultPrefix
	}
	return fmt.Sprintf("%s/%d/%s/", company, t.Year(), RomanMonth(t.Month()))
}

// Next scans the existing invoice numbers and returns the next one for the
// prefix. The remainder after the prefix (its last slash-separated segment,
// if slashes remain) is parsed as the sequence; unparseable suffixes and
// numbers under other prefixes are ignored. With no match the sequence
// starts at "001".
func Next(prefix string, existing []string) string {
	maxSeq := 0
	for _, num := range existing {
		if !strings.HasPrefix(num, prefix) {
			continue
		}
		rest := num[len(prefix):]
		if i := strings.LastIndexByte(rest, '/'); i >= 0 {
			rest = rest[i+1:]
		}
		seq, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}

// Placeholder is the degraded-mode number used when the existing numbers
// cannot be read: invoice creation must not block on the recap store, so the
// number is left for staff to fill in.
func Placeholder(prefix string) string {
	return prefix + "..."
}
