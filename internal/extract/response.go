// Package extract turns raw model output into validated reminder
// candidates. The chain is: structured parse, validate, and only when the
// structured parse fails entirely, a regex-based fallback miner. Total
// failure is an empty list, never an error.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrUnparsableResponse reports that no JSON payload could be recovered
// from a model response. The pipeline treats it as the signal to fall
// back to heuristic extraction; it is never surfaced to callers.
var ErrUnparsableResponse = errors.New("no parsable JSON in response")

// DecodeResponse extracts and decodes the JSON payload from a raw model
// response. Models wrap their output in code fences and prose despite
// instructions, so the payload is located by stripping any fenced block
// and slicing from the first { (or [) to the last } (or ]). Malformed
// JSON gets one repair pass; anything still unparsable is rejected whole
// rather than partially accepted.
func DecodeResponse(raw string) (any, error) {
	candidate := locateJSON(raw)
	if candidate == "" {
		return nil, fmt.Errorf("%w: no object found", ErrUnparsableResponse)
	}

	var payload any
	if err := json.Unmarshal([]byte(candidate), &payload); err == nil {
		return payload, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return payload, nil
}

func locateJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Interior of a fenced code block, if one is present.
	if idx := strings.Index(s, "```"); idx != -1 {
		inner := s[idx+3:]
		inner = strings.TrimPrefix(inner, "json")
		if end := strings.Index(inner, "```"); end != -1 {
			inner = inner[:end]
		}
		s = strings.TrimSpace(inner)
	}

	objStart := strings.IndexByte(s, '{')
	objEnd := strings.LastIndexByte(s, '}')
	arrStart := strings.IndexByte(s, '[')
	arrEnd := strings.LastIndexByte(s, ']')

	// A bare top-level array only counts when no object encloses it.
	if arrStart != -1 && arrEnd > arrStart && (objStart == -1 || arrStart < objStart) {
		return s[arrStart : arrEnd+1]
	}
	if objStart != -1 && objEnd > objStart {
		return s[objStart : objEnd+1]
	}
	return ""
}
