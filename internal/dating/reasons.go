package dating

import (
	"fmt"
	"strings"
)

const maxMatchReasons = 3

// GenerateMatchReasons explains a pairing with up to three sentences, in
// fixed rule order: shared interests, same city, same relationship type,
// both university educated.
func (e *Engine) GenerateMatchReasons(a, b *UserProfile) []string {
	reasons := make([]string, 0, maxMatchReasons)

	if shared := e.SharedInterests(a, b); len(shared) > 0 {
		if len(shared) > 2 {
			shared = shared[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Both love %s", strings.Join(shared, " and ")))
	}

	if city := leadingCity(a.Location); city == leadingCity(b.Location) {
		reasons = append(reasons, fmt.Sprintf("Both live in %s", city))
	}

	if a.RelationshipType == b.RelationshipType {
		reasons = append(reasons, fmt.Sprintf("Both looking for %s relationships", a.RelationshipType))
	}

	if universityEducated(a) && universityEducated(b) {
		reasons = append(reasons, "Both have university education")
	}

	if len(reasons) > maxMatchReasons {
		reasons = reasons[:maxMatchReasons]
	}
	return reasons
}

func universityEducated(p *UserProfile) bool {
	return strings.Contains(strings.ToLower(p.Education), "university")
}

func GenerateMatchReasons(a, b *UserProfile) []string {
	return defaultEngine.GenerateMatchReasons(a, b)
}
