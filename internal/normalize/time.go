package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	canonicalTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	looseTimeRe     = regexp.MustCompile(`^(\d{1,2})(?::([0-5]\d))?$`)
	twelveHourRe    = regexp.MustCompile(`(?i)^(\d{1,2})(?::([0-5]\d))?\s*(a\.?m\.?|p\.?m\.?)$`)
)

// Time resolves a loosely-formatted time string to canonical 24-hour
// HH:MM. Unparseable input yields nil rather than an error; a missing
// time is never fatal to a candidate.
func Time(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if canonicalTimeRe.MatchString(s) {
		return &s
	}

	if m := twelveHourRe.FindStringSubmatch(s); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return nil
		}
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
		if meridiem == "pm" && hour != 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		out := fmt.Sprintf("%02d:%02d", hour, minute)
		return &out
	}

	// Bare 24-hour values like "9:30" that miss the leading zero.
	if m := looseTimeRe.FindStringSubmatch(s); m != nil && m[2] != "" {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour > 23 {
			return nil
		}
		minute, _ := strconv.Atoi(m[2])
		out := fmt.Sprintf("%02d:%02d", hour, minute)
		return &out
	}

	return nil
}
