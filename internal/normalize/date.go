// Package normalize converts loosely-formatted scalar values from model
// output into canonical forms. All functions are pure: the current date is
// always an explicit parameter, never read from the clock.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateLayout is the single canonical date format produced by this package.
const DateLayout = "2006-01-02"

var (
	canonicalDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateRe       = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDateRe     = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
	monthNameRe     = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?`)

	// Guards the natural-language pass so a stray number or bare time
	// ("5pm") can never fabricate a date out of today.
	dateWordRe = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|next|week|month)\b`)
)

var nlParser = func() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}()

var monthNumbers = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Date resolves a loosely-formatted date string to canonical YYYY-MM-DD.
// Resolution order: canonical pass-through, known absolute layouts,
// explicit patterns (ISO, then US slash, then month name), relative
// tokens, and finally a guarded natural-language parse. Returns false
// when the input cannot be resolved; it never guesses.
//
// Slash dates are always read month-first (12/1/2026 is December 1st).
// This matches the US convention the extraction prompts ask for and is a
// known limitation for day-first locales.
func Date(raw string, today time.Time) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if canonicalDateRe.MatchString(s) {
		return s, true
	}

	// Absolute layouts the models commonly emit.
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006/01/02",
		"January 2, 2006",
		"January 2 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"2 January 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), true
		}
	}

	// Explicit patterns, in priority order.
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		if d, ok := ymd(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := slashDateRe.FindStringSubmatch(s); m != nil {
		if d, ok := monthFirstSlash(m[1], m[2], m[3]); ok {
			return d, true
		}
	}
	if m := monthNameRe.FindStringSubmatch(s); m != nil {
		if d, ok := monthNameDate(m[1], m[2], m[3], today); ok {
			return d, true
		}
	}

	if d, ok := RelativeDate(s, today); ok {
		return d, true
	}

	// Last resort: natural-language parse ("this friday", "end of next
	// week"). Only attempted when the text carries a date-ish word.
	if dateWordRe.MatchString(s) {
		if r, err := nlParser.Parse(s, today); err == nil && r != nil {
			return r.Time.Format(DateLayout), true
		}
	}

	return "", false
}

func ymd(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return buildDate(y, time.Month(m), d)
}

func monthFirstSlash(month, day, year string) (string, bool) {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	if y < 100 {
		y += 2000
	}
	return buildDate(y, time.Month(m), d)
}

func monthNameDate(name, day, year string, today time.Time) (string, bool) {
	month, ok := monthNumbers[strings.ToLower(strings.TrimSuffix(name, "."))]
	if !ok {
		return "", false
	}
	d, _ := strconv.Atoi(day)
	y := today.Year()
	if year != "" {
		y, _ = strconv.Atoi(year)
	}
	date, ok := buildDate(y, month, d)
	if !ok {
		return "", false
	}
	// A month-day with no year that already passed rolls to next year.
	if year == "" {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if t, err := time.Parse(DateLayout, date); err == nil && t.Before(day) {
			return buildDate(y+1, month, d)
		}
	}
	return date, true
}

// buildDate validates the components instead of letting time.Date
// silently roll 2026-02-31 into March.
func buildDate(year int, month time.Month, day int) (string, bool) {
	if year < 1000 || month < time.January || month > time.December || day < 1 {
		return "", false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}
