package match

import (
	"fmt"
	"sort"
)

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.05
)

// Candidate is a known name scored against an unrecognized one.
type Candidate struct {
	Name  string
	Score float64 // normalized similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against name.
// Returns candidates sorted by score (descending).
func RankCandidates(name string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: NameSimilarity(name, k),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Suggest returns the closest known name when it is a clear winner.
func Suggest(name string, known []string) (string, bool) {
	ranked := RankCandidates(name, known).AboveThreshold(DefaultMinScore)

	best := ranked.Best()
	if best == nil || ranked.IsAmbiguous(DefaultAmbiguityThreshold) {
		return "", false
	}

	return best.Name, true
}

// DidYouMean formats a suggestion suffix for an error message, or returns ""
// if no known name is close enough.
func DidYouMean(name string, known []string) string {
	s, ok := Suggest(name, known)
	if !ok {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", s)
}
