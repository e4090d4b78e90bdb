package dating

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var ErrWeightDrift = errors.New("compatibility weights must sum to 1")

const weightTolerance = 1e-9

// Weights are the contribution of each sub-score to the total.
type Weights struct {
	Age          float64
	Interests    float64
	Location     float64
	Relationship float64
	Preferences  float64
}

func (w Weights) Sum() float64 {
	return w.Age + w.Interests + w.Location + w.Relationship + w.Preferences
}

// RelationshipTable scores mismatched relationship types, keyed by
// (reference type, candidate type). Lookups are directional.
type RelationshipTable map[string]map[string]float64

// Config parameterizes an Engine.
type Config struct {
	Weights                   Weights
	MetroAreas                []string
	RelationshipTable         RelationshipTable
	FallbackRelationshipScore float64
	Clock                     func() time.Time
}

// DefaultConfig returns the production weights, the Bay Area metro cluster
// and the standard relationship table.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Age:          0.20,
			Interests:    0.30,
			Location:     0.15,
			Relationship: 0.20,
			Preferences:  0.15,
		},
		MetroAreas: []string{"San Francisco", "Oakland", "Berkeley", "Palo Alto", "San Jose"},
		RelationshipTable: RelationshipTable{
			RelationshipSerious:    {RelationshipFriendship: 30, RelationshipCasual: 40},
			RelationshipCasual:     {RelationshipFriendship: 60, RelationshipSerious: 40},
			RelationshipFriendship: {RelationshipSerious: 30, RelationshipCasual: 60},
		},
		FallbackRelationshipScore: 20,
		Clock:                     time.Now,
	}
}

// Engine scores pairs of profiles. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	weights       Weights
	metroAreas    map[string]struct{}
	relationships RelationshipTable
	fallback      float64
	now           func() time.Time
}

func NewEngine(cfg Config) (*Engine, error) {
	if sum := cfg.Weights.Sum(); math.Abs(sum-1) > weightTolerance {
		return nil, fmt.Errorf("%w: got %.6f", ErrWeightDrift, sum)
	}

	metro := make(map[string]struct{}, len(cfg.MetroAreas))
	for _, city := range cfg.MetroAreas {
		metro[city] = struct{}{}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	table := cfg.RelationshipTable
	if table == nil {
		table = RelationshipTable{}
	}

	return &Engine{
		weights:       cfg.Weights,
		metroAreas:    metro,
		relationships: table,
		fallback:      cfg.FallbackRelationshipScore,
		now:           clock,
	}, nil
}

var defaultEngine = mustEngine(DefaultConfig())

func mustEngine(cfg Config) *Engine {
	e, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// ScoreAgeCompatibility is 100 when each age falls in the other's range,
// 50 when only one does, and otherwise decays by 10 points per year of
// average distance to the nearest range edge.
func (e *Engine) ScoreAgeCompatibility(a, b *UserProfile) float64 {
	aRange, bRange := a.Preferences.AgeRange, b.Preferences.AgeRange
	bInA := aRange.Contains(b.Age)
	aInB := bRange.Contains(a.Age)

	switch {
	case bInA && aInB:
		return 100
	case bInA || aInB:
		return 50
	}

	avg := (edgeDistance(b.Age, aRange) + edgeDistance(a.Age, bRange)) / 2
	return math.Max(0, 100-avg*10)
}

func edgeDistance(age int, r AgeRange) float64 {
	toMin := math.Abs(float64(age - r.Min))
	toMax := math.Abs(float64(age - r.Max))
	return math.Min(toMin, toMax)
}

// ScoreInterestCompatibility counts a's interests present in b against the
// smaller of the two sets. Duplicates in a are counted each time they appear.
func (e *Engine) ScoreInterestCompatibility(a, b *UserProfile) float64 {
	if len(a.Interests) == 0 || len(b.Interests) == 0 {
		return 0
	}

	theirs := toSet(b.Interests)
	common := 0
	for _, interest := range a.Interests {
		if _, ok := theirs[interest]; ok {
			common++
		}
	}

	smaller := len(a.Interests)
	if len(b.Interests) < smaller {
		smaller = len(b.Interests)
	}

	return math.Min(100, float64(common)/float64(smaller)*100)
}

func (e *Engine) ScoreLocationCompatibility(a, b *UserProfile) float64 {
	cityA, cityB := leadingCity(a.Location), leadingCity(b.Location)
	if cityA == cityB {
		return 100
	}

	_, aMetro := e.metroAreas[cityA]
	_, bMetro := e.metroAreas[cityB]
	if aMetro && bMetro {
		return 80
	}

	return 40
}

func (e *Engine) ScoreRelationshipCompatibility(a, b *UserProfile) float64 {
	if a.RelationshipType == b.RelationshipType {
		return 100
	}
	if a.RelationshipType == RelationshipAny || b.RelationshipType == RelationshipAny {
		return 80
	}
	if score, ok := e.relationships[a.RelationshipType][b.RelationshipType]; ok {
		return score
	}
	return e.fallback
}

// ScorePreferenceCompatibility runs two checks: whether a is interested in
// anything b has, and the reverse. Each passing check is worth half the score,
// so the result is 100, 50 or 0. Earlier versions of the app averaged 50 per
// check and topped out at 50; feed totals are about 7 points higher than theirs.
func (e *Engine) ScorePreferenceCompatibility(a, b *UserProfile) float64 {
	checks := []bool{
		intersects(a.Preferences.InterestedIn, b.Interests),
		intersects(b.Preferences.InterestedIn, a.Interests),
	}

	total := 0.0
	for _, passed := range checks {
		if passed {
			total += 100
		}
	}

	evaluated := len(checks)
	if evaluated < 1 {
		evaluated = 1
	}
	return total / float64(evaluated)
}

// Breakdown computes every sub-score and the weighted total for a against b.
func (e *Engine) Breakdown(a, b *UserProfile) *CompatibilityBreakdown {
	bd := &CompatibilityBreakdown{
		Age:          e.ScoreAgeCompatibility(a, b),
		Interests:    e.ScoreInterestCompatibility(a, b),
		Location:     e.ScoreLocationCompatibility(a, b),
		Relationship: e.ScoreRelationshipCompatibility(a, b),
		Preferences:  e.ScorePreferenceCompatibility(a, b),
	}

	weighted := bd.Age*e.weights.Age +
		bd.Interests*e.weights.Interests +
		bd.Location*e.weights.Location +
		bd.Relationship*e.weights.Relationship +
		bd.Preferences*e.weights.Preferences

	bd.Total = roundScore(weighted)
	return bd
}

// CalculateCompatibilityScore returns the weighted total in [0,100].
// The result depends on argument order.
func (e *Engine) CalculateCompatibilityScore(a, b *UserProfile) int {
	return e.Breakdown(a, b).Total
}

// SharedInterests returns the interests both profiles list, in a's order,
// without repeats.
func (e *Engine) SharedInterests(a, b *UserProfile) []string {
	theirs := toSet(b.Interests)
	seen := make(map[string]struct{}, len(a.Interests))
	shared := make([]string, 0)
	for _, interest := range a.Interests {
		if _, ok := theirs[interest]; !ok {
			continue
		}
		if _, dup := seen[interest]; dup {
			continue
		}
		seen[interest] = struct{}{}
		shared = append(shared, interest)
	}
	return shared
}

// roundScore rounds half up and clamps to [0,100]. The epsilon absorbs
// float error in sums such as 79.99999999999999.
func roundScore(x float64) int {
	n := int(math.Floor(x + 0.5 + 1e-9))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func leadingCity(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func intersects(wanted, have []string) bool {
	set := toSet(have)
	for _, item := range wanted {
		if _, ok := set[item]; ok {
			return true
		}
	}
	return false
}

// Package-level helpers score with the default configuration.

func ScoreAgeCompatibility(a, b *UserProfile) float64 {
	return defaultEngine.ScoreAgeCompatibility(a, b)
}

func ScoreInterestCompatibility(a, b *UserProfile) float64 {
	return defaultEngine.ScoreInterestCompatibility(a, b)
}

func ScoreLocationCompatibility(a, b *UserProfile) float64 {
	return defaultEngine.ScoreLocationCompatibility(a, b)
}

func ScoreRelationshipCompatibility(a, b *UserProfile) float64 {
	return defaultEngine.ScoreRelationshipCompatibility(a, b)
}

func ScorePreferenceCompatibility(a, b *UserProfile) float64 {
	return defaultEngine.ScorePreferenceCompatibility(a, b)
}

func CalculateCompatibilityScore(a, b *UserProfile) int {
	return defaultEngine.CalculateCompatibilityScore(a, b)
}

func SharedInterests(a, b *UserProfile) []string {
	return defaultEngine.SharedInterests(a, b)
}
