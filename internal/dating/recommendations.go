package dating

import (
	"fmt"
	"sort"
)

// MatchID is the feed entry id for a candidate.
func MatchID(candidateID string) string {
	return fmt.Sprintf("match-%s", candidateID)
}

// GenerateMatches scores every candidate in pool against reference and
// returns them best first. The reference user is never included, entries
// with equal scores keep their pool order, and every entry shares one
// MatchedAt taken from the engine clock.
func (e *Engine) GenerateMatches(reference *UserProfile, pool []*UserProfile) []*MatchResult {
	matchedAt := e.now()
	matches := make([]*MatchResult, 0, len(pool))

	for _, candidate := range pool {
		if candidate == nil || candidate.ID == reference.ID {
			continue
		}

		matches = append(matches, &MatchResult{
			ID:                 MatchID(candidate.ID),
			User:               candidate,
			CompatibilityScore: e.CalculateCompatibilityScore(reference, candidate),
			SharedInterests:    e.SharedInterests(reference, candidate),
			ReasonsForMatch:    e.GenerateMatchReasons(reference, candidate),
			MatchedAt:          matchedAt,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})

	return matches
}

func GenerateMatches(reference *UserProfile, pool []*UserProfile) []*MatchResult {
	return defaultEngine.GenerateMatches(reference, pool)
}
