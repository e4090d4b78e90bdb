package dating

import (
	"github.com/imadgeboyega/soulconnect-backend/internal/chat"
)

// LikeResult is returned after liking a feed entry. Conversation is set
// when the score clears the like threshold.
type LikeResult struct {
	Match               *MatchResult       `json:"match"`
	Conversation        *chat.Conversation `json:"conversation,omitempty"`
	ConversationCreated bool               `json:"conversation_created"`
}

// CompatibilityReport explains the score of one user against another.
type CompatibilityReport struct {
	UserID          string                  `json:"user_id"`
	OtherUserID     string                  `json:"other_user_id"`
	Breakdown       *CompatibilityBreakdown `json:"breakdown"`
	SharedInterests []string                `json:"shared_interests"`
	Reasons         []string                `json:"reasons"`
}

// FeedResponse wraps a list of matches for the discover and matches views.
type FeedResponse struct {
	Matches []*MatchResult `json:"matches"`
	Total   int            `json:"total"`
}
