package dating

import (
	"time"
)

// Relationship types a profile can be looking for
const (
	RelationshipCasual     = "casual"
	RelationshipSerious    = "serious"
	RelationshipFriendship = "friendship"
	RelationshipAny        = "any"
)

// AgeRange is an inclusive [Min, Max] window of acceptable partner ages.
type AgeRange struct {
	Min int `json:"min" validate:"gt=0"`
	Max int `json:"max" validate:"gt=0"`
}

// Contains reports whether age lies inside the range, bounds included.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Preferences describe what a user is looking for. MaxDistance, DealBreakers
// and ImportantQualities are carried for display and are not scored.
type Preferences struct {
	AgeRange           AgeRange `json:"age_range"`
	MaxDistance        float64  `json:"max_distance" validate:"gt=0"`
	InterestedIn       []string `json:"interested_in"`
	DealBreakers       []string `json:"deal_breakers"`
	ImportantQualities []string `json:"important_qualities"`
}

type UserProfile struct {
	ID               string      `json:"id" db:"id" validate:"required"`
	Name             string      `json:"name" db:"name"`
	Age              int         `json:"age" db:"age" validate:"gt=0,lte=120"`
	Photos           []string    `json:"photos" db:"photos"`
	Bio              string      `json:"bio" db:"bio"`
	Interests        []string    `json:"interests" db:"interests"`
	Location         string      `json:"location" db:"location"`
	Occupation       string      `json:"occupation" db:"occupation"`
	Education        string      `json:"education" db:"education"`
	RelationshipType string      `json:"relationship_type" db:"relationship_type" validate:"oneof=casual serious friendship any"`
	Preferences      Preferences `json:"preferences"`
	IsOnline         bool        `json:"is_online" db:"is_online"`
	LastActive       time.Time   `json:"last_active" db:"last_active"`
}

// MatchResult is one scored candidate in a discovery feed.
type MatchResult struct {
	ID                 string       `json:"id"`
	User               *UserProfile `json:"user"`
	CompatibilityScore int          `json:"compatibility_score"`
	SharedInterests    []string     `json:"shared_interests"`
	ReasonsForMatch    []string     `json:"reasons_for_match"`
	MatchedAt          time.Time    `json:"matched_at"`
}

// CompatibilityBreakdown holds every sub-score behind a total.
type CompatibilityBreakdown struct {
	Age          float64 `json:"age"`
	Interests    float64 `json:"interests"`
	Location     float64 `json:"location"`
	Relationship float64 `json:"relationship"`
	Preferences  float64 `json:"preferences"`
	Total        int     `json:"total"`
}

// SwipeAction records a like or pass on a feed entry.
type SwipeAction struct {
	MatchID   string    `json:"match_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ActionLike = "like"
	ActionPass = "pass"
)
