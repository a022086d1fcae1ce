package extract

import (
	"strings"

	"github.com/pockettasks/remind/internal/types"
)

// Models frequently emit the same task twice with slightly different
// wording. Candidates on the same date whose titles are nearly identical
// collapse to one, keeping the higher confidence.
func dedupe(candidates []types.ReminderCandidate) []types.ReminderCandidate {
	out := make([]types.ReminderCandidate, 0, len(candidates))
	for _, c := range candidates {
		merged := false
		for i, kept := range out {
			if kept.Date == c.Date && similarTitles(kept.Title, c.Title) {
				if c.Confidence > kept.Confidence {
					out[i] = c
				}
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, c)
		}
	}
	return out
}

func similarTitles(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	longer := max(len(a), len(b))
	if longer == 0 {
		return true
	}
	// Tolerate roughly one edit per five characters.
	return levenshtein(a, b)*5 <= longer
}

func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			d := matrix[i-1][j] + 1
			if ins := matrix[i][j-1] + 1; ins < d {
				d = ins
			}
			if sub := matrix[i-1][j-1] + cost; sub < d {
				d = sub
			}
			matrix[i][j] = d
		}
	}
	return matrix[len(s1)][len(s2)]
}
