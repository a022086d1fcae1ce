package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/pockettasks/remind/internal/normalize"
	"github.com/pockettasks/remind/internal/types"
)

// Fallback confidence is always below the structured-path maximum so the
// caller can tell a mined candidate from a cleanly parsed one.
const (
	fallbackConfidence = 0.85
	weakConfidence     = 0.6
)

// Date patterns, in priority order. A keyword-anchored match ("by
// 12/12/2026") beats a bare date found anywhere in the text.
var (
	keywordSlashDateRe = regexp.MustCompile(`(?i)\b(?:by|before|after|due|on)\s+(\d{1,2}/\d{1,2}/\d{2,4})`)
	bareISODateRe      = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	bareSlashDateRe    = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4})\b`)
	keywordWeekdayRe   = regexp.MustCompile(`(?i)\b(?:by|before|after|due|on)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	keywordMonthRe     = regexp.MustCompile(`(?i)\b(?:by|before|after|due|on)\s+((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?,?\s*\d{4})`)
	relativeTokenRe    = regexp.MustCompile(`(?i)\b(tomorrow|today|next week|next month|in \d+ days?)\b`)
)

// Title patterns. The company+bill heuristic is tried first because it is
// strictly more specific: "conedison. pay gas bill by 12/12/2026" should
// yield "Pay conedison gas bill", not the bare verb phrase "pay gas bill".
var (
	companyBillRe = regexp.MustCompile(`(?i)\b([a-z][a-z0-9&_-]*)\s*[.:,]\s*pay\s+([a-z]+)\s+bill\b`)
	verbObjectRe  = regexp.MustCompile(`(?i)\b((?:pay|submit|send|renew|schedule|book|call|email|review|file|complete|finish|attend|cancel|buy|order|return|sign|register)\s+[a-z0-9][^.,\n]*?)(?:\s+(?:by|before|due|on)\b|[.,\n]|$)`)
)

var timeClauseRe = regexp.MustCompile(`(?i)(?:\b(?:at|by)\s+|@\s*)(\d{1,2}(?::\d{2})?\s*(?:a\.?m\.?|p\.?m\.?)?)`)

// FallbackExtract mines reminder candidates directly from raw text. It
// runs only when structured parsing failed completely, and it is
// deliberately conservative: no resolvable date or no constructible title
// means zero candidates, never an invented default.
func FallbackExtract(text string, today time.Time) []types.ReminderCandidate {
	candidates := make([]types.ReminderCandidate, 0)

	date, strongDate, ok := findDate(text, today)
	if !ok {
		return candidates
	}

	title, entities, ok := findTitle(text)
	if !ok {
		return candidates
	}

	conf := weakConfidence
	if strongDate {
		conf = fallbackConfidence
	}

	candidates = append(candidates, types.ReminderCandidate{
		Title:       title,
		Date:        date,
		Time:        findTime(text),
		Description: snippet(text),
		Type:        normalize.InferTaskType(title),
		Confidence:  conf,
		Entities:    entities,
		SourceText:  snippet(text),
	})
	return candidates
}

func findDate(text string, today time.Time) (date string, strong bool, ok bool) {
	for _, re := range []*regexp.Regexp{keywordSlashDateRe, bareISODateRe, bareSlashDateRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			if d, resolved := normalize.Date(m[1], today); resolved {
				return d, true, true
			}
		}
	}
	if m := keywordWeekdayRe.FindStringSubmatch(text); m != nil {
		if d, resolved := normalize.RelativeDate(m[1], today); resolved {
			return d, false, true
		}
	}
	if m := keywordMonthRe.FindStringSubmatch(text); m != nil {
		if d, resolved := normalize.Date(m[1], today); resolved {
			return d, true, true
		}
	}
	if m := relativeTokenRe.FindStringSubmatch(text); m != nil {
		if d, resolved := normalize.RelativeDate(m[1], today); resolved {
			return d, false, true
		}
	}
	return "", false, false
}

func findTitle(text string) (title string, entities []string, ok bool) {
	entities = make([]string, 0)

	if m := companyBillRe.FindStringSubmatch(text); m != nil {
		company := strings.ToLower(m[1])
		kind := strings.ToLower(m[2])
		return "Pay " + company + " " + kind + " bill", append(entities, company), true
	}

	if m := verbObjectRe.FindStringSubmatch(text); m != nil {
		phrase := strings.TrimSpace(m[1])
		if phrase != "" {
			return capitalize(phrase), entities, true
		}
	}

	return "", entities, false
}

func findTime(text string) *string {
	for _, m := range timeClauseRe.FindAllStringSubmatch(text, -1) {
		if t := normalize.Time(strings.TrimSpace(m[1])); t != nil {
			return t
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
