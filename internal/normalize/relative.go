package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDaysRe = regexp.MustCompile(`^in\s+(\d+)\s+days?$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// RelativeDate resolves a relative date token against an explicit "today".
// Weekday names resolve to the next occurrence strictly in the future:
// on a Monday, "monday" means a week from today, not today.
func RelativeDate(token string, today time.Time) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(token))

	switch s {
	case "today":
		return today.Format(DateLayout), true
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(DateLayout), true
	case "next week":
		return today.AddDate(0, 0, 7).Format(DateLayout), true
	case "next month":
		return today.AddDate(0, 1, 0).Format(DateLayout), true
	}

	if m := inDaysRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		return today.AddDate(0, 0, n).Format(DateLayout), true
	}

	name := strings.TrimPrefix(s, "next ")
	if dow, ok := weekdays[name]; ok {
		ahead := (int(dow) - int(today.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead).Format(DateLayout), true
	}

	return "", false
}
