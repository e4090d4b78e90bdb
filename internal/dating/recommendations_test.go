package dating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Clock = func() time.Time { return fixedNow }
	engine, err := NewEngine(cfg)
	require.NoError(t, err)
	return engine
}

func TestGenerateMatches_MockDataset(t *testing.T) {
	engine := fixedClockEngine(t)
	profiles := MockProfiles(fixedNow)

	matches := engine.GenerateMatches(profiles[0], profiles)
	require.Len(t, matches, 4)

	var ids []string
	var scores []int
	for _, m := range matches {
		ids = append(ids, m.ID)
		scores = append(scores, m.CompatibilityScore)
		assert.NotEqual(t, DemoUserID, m.User.ID)
		assert.Equal(t, fixedNow, m.MatchedAt)
		assert.LessOrEqual(t, len(m.ReasonsForMatch), 3)
	}

	assert.Equal(t, []string{"match-4", "match-2", "match-3", "match-5"}, ids)
	assert.Equal(t, []int{87, 80, 77, 68}, scores)
	assert.Equal(t, []string{"Travel", "Photography", "Coffee", "Music"}, matches[0].SharedInterests)
}

func TestGenerateMatches_EmptyPool(t *testing.T) {
	ref := newProfile("ref")

	matches := GenerateMatches(ref, nil)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	assert.Empty(t, GenerateMatches(ref, []*UserProfile{ref}))
}

func TestGenerateMatches_ExcludesReferenceByID(t *testing.T) {
	ref := newProfile("ref", withInterests("Travel"))
	twin := newProfile("ref", withInterests("Travel"))
	other := newProfile("other", withInterests("Travel"))

	matches := GenerateMatches(ref, []*UserProfile{twin, nil, other})
	require.Len(t, matches, 1)
	assert.Equal(t, "match-other", matches[0].ID)
}

func TestGenerateMatches_StableForEqualScores(t *testing.T) {
	ref := newProfile("ref", withInterests("Travel"))
	pool := []*UserProfile{
		newProfile("c", withInterests("Travel")),
		newProfile("low", withLocation("Seattle, WA")),
		newProfile("b", withInterests("Travel")),
		newProfile("a", withInterests("Travel")),
	}

	matches := GenerateMatches(ref, pool)
	require.Len(t, matches, 4)

	assert.Equal(t, matches[0].CompatibilityScore, matches[1].CompatibilityScore)
	assert.Equal(t, matches[1].CompatibilityScore, matches[2].CompatibilityScore)
	assert.Equal(t, "match-c", matches[0].ID)
	assert.Equal(t, "match-b", matches[1].ID)
	assert.Equal(t, "match-a", matches[2].ID)
	assert.Equal(t, "match-low", matches[3].ID)
}

func TestGenerateMatches_SortedNonIncreasing(t *testing.T) {
	profiles := MockProfiles(fixedNow)
	for _, ref := range profiles {
		matches := GenerateMatches(ref, profiles)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].CompatibilityScore, matches[i].CompatibilityScore)
		}
	}
}

func TestGenerateMatches_SharedInterestsAreIntersection(t *testing.T) {
	profiles := MockProfiles(fixedNow)
	for _, ref := range profiles {
		for _, m := range GenerateMatches(ref, profiles) {
			for _, interest := range m.SharedInterests {
				assert.Contains(t, ref.Interests, interest)
				assert.Contains(t, m.User.Interests, interest)
			}
		}
	}
}
