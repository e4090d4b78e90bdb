// internal/dating/service.go

package dating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/imadgeboyega/soulconnect-backend/internal/chat"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrFeedNotLoaded = errors.New("discovery feed not loaded")
)

const greetingTemplate = "Hi %s! I saw we have a lot in common. How's your day going?"

type Service interface {
	// Discover regenerates and caches the user's ranked feed.
	Discover(ctx context.Context, userID string) ([]*MatchResult, error)
	// Matches returns cached feed entries scoring at least the like threshold.
	Matches(ctx context.Context, userID string) ([]*MatchResult, error)
	Like(ctx context.Context, userID, matchID string) (*LikeResult, error)
	Pass(ctx context.Context, userID, matchID string) error
	StartChat(ctx context.Context, userID, matchID string) (*chat.Conversation, error)
	Compatibility(ctx context.Context, userID, otherID string) (*CompatibilityReport, error)
	Profile(ctx context.Context, userID string) (*UserProfile, error)

	// Scheduled jobs
	RefreshFeeds(ctx context.Context) (int, error)
}

type ServiceConfig struct {
	LikeThreshold int
}

type feed struct {
	matches []*MatchResult
	swipes  map[string]SwipeAction
}

func (f *feed) find(matchID string) (*MatchResult, bool) {
	for _, m := range f.matches {
		if m.ID == matchID {
			return m, true
		}
	}
	return nil, false
}

type service struct {
	repo      Repository
	engine    *Engine
	chat      chat.Service
	threshold int
	logger    *slog.Logger

	mu    sync.RWMutex
	feeds map[string]*feed
}

func NewService(repo Repository, engine *Engine, chatService chat.Service, config ServiceConfig, logger *slog.Logger) Service {
	return &service{
		repo:      repo,
		engine:    engine,
		chat:      chatService,
		threshold: config.LikeThreshold,
		logger:    logger,
		feeds:     make(map[string]*feed),
	}
}

func (s *service) Discover(ctx context.Context, userID string) ([]*MatchResult, error) {
	matches, err := s.generate(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.feeds[userID]; ok {
		existing.matches = matches
	} else {
		s.feeds[userID] = &feed{matches: matches, swipes: make(map[string]SwipeAction)}
	}
	s.mu.Unlock()

	s.logger.Debug("feed generated", "user_id", userID, "matches", len(matches))
	return matches, nil
}

func (s *service) generate(ctx context.Context, userID string) ([]*MatchResult, error) {
	reference, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	pool, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	matches := s.engine.GenerateMatches(reference, pool)
	recordFeed(matches)
	return matches, nil
}

func (s *service) Matches(ctx context.Context, userID string) ([]*MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.feeds[userID]
	if !ok {
		return nil, ErrFeedNotLoaded
	}

	out := make([]*MatchResult, 0, len(f.matches))
	for _, m := range f.matches {
		if m.CompatibilityScore >= s.threshold {
			out = append(out, m)
		}
	}
	return out, nil
}

// Like records the like and, for scores at or above the threshold, opens a
// conversation in which the candidate greets the user. The greeting is only
// posted when the conversation is new.
func (s *service) Like(ctx context.Context, userID, matchID string) (*LikeResult, error) {
	match, err := s.swipe(userID, matchID, ActionLike)
	if err != nil {
		return nil, err
	}

	result := &LikeResult{Match: match}
	if match.CompatibilityScore < s.threshold {
		return result, nil
	}

	reference, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	conv, created, err := s.chat.Open(ctx, userID, participantFor(match.User), fmt.Sprintf(greetingTemplate, reference.Name))
	if err != nil {
		return nil, fmt.Errorf("open conversation: %w", err)
	}
	if created {
		conversationsOpened.Inc()
	}

	result.Conversation = conv
	result.ConversationCreated = created
	return result, nil
}

func (s *service) Pass(ctx context.Context, userID, matchID string) error {
	_, err := s.swipe(userID, matchID, ActionPass)
	if err != nil {
		return err
	}
	s.logger.Info("passed on match", "user_id", userID, "match_id", matchID)
	return nil
}

func (s *service) swipe(userID, matchID, action string) (*MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feeds[userID]
	if !ok {
		return nil, ErrFeedNotLoaded
	}
	match, ok := f.find(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	f.swipes[matchID] = SwipeAction{MatchID: matchID, Action: action, CreatedAt: time.Now()}
	recordSwipe(action)
	return match, nil
}

// StartChat opens the conversation with a feed entry regardless of score,
// reusing it if it already exists.
func (s *service) StartChat(ctx context.Context, userID, matchID string) (*chat.Conversation, error) {
	s.mu.RLock()
	f, ok := s.feeds[userID]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrFeedNotLoaded
	}
	match, found := f.find(matchID)
	s.mu.RUnlock()

	if !found {
		return nil, ErrMatchNotFound
	}

	conv, created, err := s.chat.Open(ctx, userID, participantFor(match.User), "")
	if err != nil {
		return nil, fmt.Errorf("open conversation: %w", err)
	}
	if created {
		conversationsOpened.Inc()
	}
	return conv, nil
}

func (s *service) Compatibility(ctx context.Context, userID, otherID string) (*CompatibilityReport, error) {
	user, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	other, err := s.repo.GetProfile(ctx, otherID)
	if err != nil {
		return nil, err
	}

	return &CompatibilityReport{
		UserID:          userID,
		OtherUserID:     otherID,
		Breakdown:       s.engine.Breakdown(user, other),
		SharedInterests: s.engine.SharedInterests(user, other),
		Reasons:         s.engine.GenerateMatchReasons(user, other),
	}, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// RefreshFeeds regenerates every cached feed and returns how many were
// refreshed. A failing user is logged and skipped.
func (s *service) RefreshFeeds(ctx context.Context) (int, error) {
	s.mu.RLock()
	userIDs := make([]string, 0, len(s.feeds))
	for id := range s.feeds {
		userIDs = append(userIDs, id)
	}
	s.mu.RUnlock()

	refreshed := 0
	for _, id := range userIDs {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if _, err := s.Discover(ctx, id); err != nil {
			s.logger.Warn("feed refresh failed", "user_id", id, "error", err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

func participantFor(p *UserProfile) chat.Participant {
	participant := chat.Participant{ID: p.ID, Name: p.Name}
	if len(p.Photos) > 0 {
		participant.Photo = p.Photos[0]
	}
	return participant
}
