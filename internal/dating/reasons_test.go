package dating

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reasonTemplates = []*regexp.Regexp{
	regexp.MustCompile(`^Both love [^ ].*$`),
	regexp.MustCompile(`^Both live in .+$`),
	regexp.MustCompile(`^Both looking for .+ relationships$`),
	regexp.MustCompile(`^Both have university education$`),
}

func matchesTemplate(reason string) bool {
	for _, re := range reasonTemplates {
		if re.MatchString(reason) {
			return true
		}
	}
	return false
}

func TestGenerateMatchReasons_MockPairs(t *testing.T) {
	alex := mockByID("1")

	assert.Equal(t, []string{
		"Both love Travel and Photography",
		"Both live in San Francisco",
		"Both looking for serious relationships",
	}, GenerateMatchReasons(alex, mockByID("2")))

	assert.Equal(t, []string{
		"Both love Travel and Hiking",
		"Both looking for serious relationships",
	}, GenerateMatchReasons(alex, mockByID("3")))

	// A single shared interest is phrased without "and".
	assert.Equal(t, []string{"Both love Travel"}, GenerateMatchReasons(alex, mockByID("5")))
}

func TestGenerateMatchReasons_CappedAtThree(t *testing.T) {
	a := newProfile("a", withInterests("Travel"), withEducation("Stanford University"))
	b := newProfile("b", withInterests("Travel"), withEducation("University of Oregon"))

	reasons := GenerateMatchReasons(a, b)
	assert.Len(t, reasons, 3)
	assert.NotContains(t, reasons, "Both have university education")
}

func TestGenerateMatchReasons_EducationOnly(t *testing.T) {
	a := newProfile("a", withLocation("Austin, TX"), withRelationship(RelationshipCasual), withEducation("UNIVERSITY of Texas"))
	b := newProfile("b", withLocation("Denver, CO"), withEducation("Colorado State University"))

	assert.Equal(t, []string{"Both have university education"}, GenerateMatchReasons(a, b))
}

func TestGenerateMatchReasons_NoReasons(t *testing.T) {
	a := newProfile("a", withLocation("Austin, TX"), withRelationship(RelationshipCasual))
	b := newProfile("b", withLocation("Denver, CO"))

	reasons := GenerateMatchReasons(a, b)
	assert.NotNil(t, reasons)
	assert.Empty(t, reasons)
}

func TestGenerateMatchReasons_FollowsReferenceOrder(t *testing.T) {
	a := newProfile("a", withInterests("Coffee", "Travel", "Jazz"))
	b := newProfile("b", withInterests("Jazz", "Travel", "Coffee"))

	assert.Equal(t, "Both love Coffee and Travel", GenerateMatchReasons(a, b)[0])
	assert.Equal(t, "Both love Jazz and Travel", GenerateMatchReasons(b, a)[0])
}

func TestGenerateMatchReasons_KnownTemplates(t *testing.T) {
	profiles := MockProfiles(fixedNow)
	for _, a := range profiles {
		for _, b := range profiles {
			reasons := GenerateMatchReasons(a, b)
			assert.LessOrEqual(t, len(reasons), 3)
			for _, r := range reasons {
				assert.True(t, matchesTemplate(r), "unexpected reason %q", r)
			}
		}
	}
}
