package dating

import (
	"time"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newProfile returns a valid profile that other fields can be layered onto.
func newProfile(id string, opts ...func(*UserProfile)) *UserProfile {
	p := &UserProfile{
		ID:               id,
		Name:             "User " + id,
		Age:              30,
		Location:         "San Francisco, CA",
		RelationshipType: RelationshipSerious,
		Preferences: Preferences{
			AgeRange:    AgeRange{Min: 25, Max: 35},
			MaxDistance: 50,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func withAge(age int) func(*UserProfile) {
	return func(p *UserProfile) { p.Age = age }
}

func withAgeRange(min, max int) func(*UserProfile) {
	return func(p *UserProfile) { p.Preferences.AgeRange = AgeRange{Min: min, Max: max} }
}

func withInterests(interests ...string) func(*UserProfile) {
	return func(p *UserProfile) { p.Interests = interests }
}

func withInterestedIn(interests ...string) func(*UserProfile) {
	return func(p *UserProfile) { p.Preferences.InterestedIn = interests }
}

func withLocation(location string) func(*UserProfile) {
	return func(p *UserProfile) { p.Location = location }
}

func withRelationship(kind string) func(*UserProfile) {
	return func(p *UserProfile) { p.RelationshipType = kind }
}

func withEducation(education string) func(*UserProfile) {
	return func(p *UserProfile) { p.Education = education }
}

func mockByID(id string) *UserProfile {
	for _, p := range MockProfiles(fixedNow) {
		if p.ID == id {
			return p
		}
	}
	panic("no mock profile " + id)
}
