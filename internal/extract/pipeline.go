package extract

import (
	"errors"
	"time"

	"github.com/pockettasks/remind/internal/debug"
	"github.com/pockettasks/remind/internal/types"
)

// Result carries the extracted candidates plus metadata about which path
// produced them.
type Result struct {
	Candidates []types.ReminderCandidate
	Duration   time.Duration
	Source     string // "structured" or "fallback"
}

// Pipeline sequences structured parsing, validation, and the heuristic
// fallback. It holds no mutable state and is safe for concurrent use.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Run converts a raw model response (or raw document text, when no model
// was involved) into validated candidates. Parse and validation problems
// degrade to a smaller or empty list; Run never fails.
func (p *Pipeline) Run(raw string, today time.Time) *Result {
	start := time.Now()

	payload, err := DecodeResponse(raw)
	if err != nil {
		if !errors.Is(err, ErrUnparsableResponse) {
			debug.Logf("extract: unexpected decode error: %v", err)
		}
		candidates := FallbackExtract(raw, today)
		debug.Logf("extract: fallback path produced %d candidate(s)", len(candidates))
		return &Result{
			Candidates: candidates,
			Duration:   time.Since(start),
			Source:     "fallback",
		}
	}

	candidates := dedupe(ValidateCandidates(payload, today))
	debug.Logf("extract: structured path produced %d candidate(s)", len(candidates))
	return &Result{
		Candidates: candidates,
		Duration:   time.Since(start),
		Source:     "structured",
	}
}

// Candidates is the plain-function form of Run for callers that do not
// care about metadata.
func Candidates(raw string, today time.Time) []types.ReminderCandidate {
	return NewPipeline().Run(raw, today).Candidates
}
