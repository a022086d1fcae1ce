package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var numericAmountRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Amount resolves a monetary value from model output into a
// currency-prefixed display string. Raw JSON numbers pass through
// formatted; strings get thousands separators stripped and the first
// numeric substring extracted. Returns nil when no amount is present.
func Amount(raw any) *string {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		out := "$" + strconv.FormatFloat(v, 'f', -1, 64)
		return &out
	case int:
		out := "$" + strconv.Itoa(v)
		return &out
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return nil
		}
		match := numericAmountRe.FindString(s)
		if match == "" {
			return nil
		}
		out := "$" + match
		return &out
	default:
		return nil
	}
}
