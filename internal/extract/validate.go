package extract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pockettasks/remind/internal/normalize"
	"github.com/pockettasks/remind/internal/types"
)

// Key aliases tolerated in model output, in resolution order.
var (
	titleAliases       = []string{"title", "task", "taskName", "task_name"}
	dateAliases        = []string{"date", "deadlineDate", "deadline_date", "dueDate", "due_date"}
	amountAliases      = []string{"amount", "price", "cost"}
	descriptionAliases = []string{"description", "context"}
)

const defaultConfidence = 0.7

// ValidateCandidates maps a decoded payload (a single task object, an
// array of them, or a {"tasks": [...]} wrapper) to well-formed candidates.
// Entries missing a usable title or date are dropped silently; only the
// shorter output list is observable.
func ValidateCandidates(payload any, today time.Time) []types.ReminderCandidate {
	candidates := make([]types.ReminderCandidate, 0)
	for _, entry := range taskEntries(payload) {
		if c, ok := validateEntry(entry, today); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func taskEntries(payload any) []map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		if tasks, ok := v["tasks"].([]any); ok {
			return objectSlice(tasks)
		}
		if tasks, ok := v["reminders"].([]any); ok {
			return objectSlice(tasks)
		}
		return []map[string]any{v}
	case []any:
		return objectSlice(v)
	default:
		return nil
	}
}

func objectSlice(items []any) []map[string]any {
	entries := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			entries = append(entries, obj)
		}
	}
	return entries
}

func validateEntry(entry map[string]any, today time.Time) (types.ReminderCandidate, bool) {
	var c types.ReminderCandidate

	title := strings.TrimSpace(stringField(entry, titleAliases))
	if title == "" || strings.EqualFold(title, types.UntitledPlaceholder) {
		return c, false
	}

	rawDate := stringField(entry, dateAliases)
	date, ok := normalize.Date(rawDate, today)
	if !ok {
		return c, false
	}

	c.Title = title
	c.Date = date
	if raw, ok := entry["time"].(string); ok {
		c.Time = normalize.Time(raw)
	}
	c.Amount = normalize.Amount(anyField(entry, amountAliases))
	c.Description = stringField(entry, descriptionAliases)
	c.Confidence = confidence(entry, date, today)
	c.Type = taskType(entry, title)
	c.Entities = stringSliceField(entry, "entities")
	c.SourceText = sourceText(entry, c.Description)
	return c, true
}

// confidence clamps the supplied value into [0,1] and applies the
// past-date penalty: a confidently-extracted date that is already in the
// past is suspicious (the document likely mis-stated it), so trust drops
// by 0.2 down to a floor of 0.5 while the candidate itself is kept.
func confidence(entry map[string]any, date string, today time.Time) float64 {
	conf := defaultConfidence
	if v, ok := entry["confidence"].(float64); ok {
		conf = v
	}
	conf = clamp(conf, 0, 1)

	if parsed, err := time.Parse(normalize.DateLayout, date); err == nil {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if parsed.Before(day) && conf > 0.8 {
			conf = max(conf-0.2, 0.5)
		}
	}
	return conf
}

func taskType(entry map[string]any, title string) types.TaskType {
	if raw, ok := entry["type"].(string); ok {
		t := types.TaskType(strings.ToLower(strings.TrimSpace(raw)))
		if t.IsValid() {
			return t
		}
	}
	return normalize.InferTaskType(title)
}

func sourceText(entry map[string]any, description string) string {
	if raw, ok := entry["sourceText"].(string); ok && raw != "" {
		return snippet(raw)
	}
	return snippet(description)
}

// snippet trims and truncates source text, cutting on a rune boundary so
// multibyte input never leaves invalid UTF-8 behind.
func snippet(s string) string {
	const maxLen = 120
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func stringField(entry map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := entry[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func anyField(entry map[string]any, aliases []string) any {
	for _, key := range aliases {
		if v, ok := entry[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringSliceField(entry map[string]any, key string) []string {
	out := make([]string, 0)
	if items, ok := entry[key].([]any); ok {
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
