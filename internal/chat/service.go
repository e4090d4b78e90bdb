package chat

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("message content is empty")
	ErrServiceClosed        = errors.New("chat service is closed")
)

// DefaultResponses are the canned replies of simulated participants.
var DefaultResponses = []string{
	"That's interesting! Tell me more about that.",
	"I love that too! We should definitely talk more about this.",
	"Wow, that sounds amazing! I'd love to hear more.",
	"That's so cool! I've always wanted to try that.",
	"Great question! What made you think of that?",
}

type Service interface {
	// Open returns the owner's conversation with participant, creating it
	// if needed. A non-empty greeting is posted by the participant on
	// creation only. created reports whether a new conversation was made.
	Open(ctx context.Context, ownerID string, participant Participant, greeting string) (conv *Conversation, created bool, err error)
	Send(ctx context.Context, ownerID, conversationID, content string) (*Message, error)
	List(ctx context.Context, ownerID string) ([]*ConversationSummary, error)
	Get(ctx context.Context, ownerID, conversationID string) (*Conversation, error)
	MarkRead(ctx context.Context, ownerID, conversationID string) (int, error)
	Close()
}

// Options configures the simulated replies.
type Options struct {
	MinReplyDelay time.Duration
	MaxReplyDelay time.Duration
	Responses     []string
	Rand          *rand.Rand
	Clock         func() time.Time
	Logger        *slog.Logger
}

type service struct {
	mu     sync.Mutex
	convs  map[string]map[string]*Conversation // owner -> conversation id -> conversation
	timers map[*time.Timer]struct{}
	closed bool

	minDelay  time.Duration
	maxDelay  time.Duration
	responses []string
	rng       *rand.Rand
	now       func() time.Time
	logger    *slog.Logger
}

func NewService(opts Options) Service {
	s := &service{
		convs:     make(map[string]map[string]*Conversation),
		timers:    make(map[*time.Timer]struct{}),
		minDelay:  opts.MinReplyDelay,
		maxDelay:  opts.MaxReplyDelay,
		responses: opts.Responses,
		rng:       opts.Rand,
		now:       opts.Clock,
		logger:    opts.Logger,
	}
	if len(s.responses) == 0 {
		s.responses = DefaultResponses
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *service) Open(ctx context.Context, ownerID string, participant Participant, greeting string) (*Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false, ErrServiceClosed
	}

	owned := s.convs[ownerID]
	if owned == nil {
		owned = make(map[string]*Conversation)
		s.convs[ownerID] = owned
	}

	id := ConversationID(participant.ID)
	if conv, ok := owned[id]; ok {
		return conv.clone(), false, nil
	}

	conv := &Conversation{
		ID:          id,
		OwnerID:     ownerID,
		Participant: participant,
		Messages:    []Message{},
		CreatedAt:   s.now(),
	}
	if greeting != "" {
		s.appendLocked(conv, participant.ID, greeting, false)
	}
	owned[id] = conv

	s.logger.Info("conversation opened", "owner_id", ownerID, "conversation_id", id)
	return conv.clone(), true, nil
}

// Send posts content from the owner and schedules a reply from the
// participant after a random delay.
func (s *service) Send(ctx context.Context, ownerID, conversationID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}

	conv, ok := s.convs[ownerID][conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}

	msg := s.appendLocked(conv, ownerID, content, true)
	s.scheduleReplyLocked(ownerID, conversationID)
	return &msg, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]*ConversationSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]*ConversationSummary, 0, len(s.convs[ownerID]))
	for _, conv := range s.convs[ownerID] {
		c := conv.clone()
		summaries = append(summaries, &ConversationSummary{
			ID:          c.ID,
			Participant: c.Participant,
			LastMessage: c.LastMessage,
			UnreadCount: c.UnreadCount(),
		})
	}

	// Most recent activity first
	sort.SliceStable(summaries, func(i, j int) bool {
		return lastActivity(summaries[i]).After(lastActivity(summaries[j]))
	})
	return summaries, nil
}

func lastActivity(c *ConversationSummary) time.Time {
	if c.LastMessage == nil {
		return time.Time{}
	}
	return c.LastMessage.Timestamp
}

func (s *service) Get(ctx context.Context, ownerID, conversationID string) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[ownerID][conversationID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv.clone(), nil
}

// MarkRead marks every incoming message as read and returns how many changed.
func (s *service) MarkRead(ctx context.Context, ownerID, conversationID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.convs[ownerID][conversationID]
	if !ok {
		return 0, ErrConversationNotFound
	}

	changed := 0
	for i := range conv.Messages {
		if !conv.Messages[i].Read && conv.Messages[i].SenderID != ownerID {
			conv.Messages[i].Read = true
			changed++
		}
	}
	return changed, nil
}

// Close stops pending replies. Later calls that write return ErrServiceClosed.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for t := range s.timers {
		t.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
}

func (s *service) appendLocked(conv *Conversation, senderID, content string, read bool) Message {
	msg := Message{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: s.now(),
		Read:      read,
	}
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessage = &conv.Messages[len(conv.Messages)-1]
	return msg
}

func (s *service) scheduleReplyLocked(ownerID, conversationID string) {
	delay := s.minDelay
	if spread := s.maxDelay - s.minDelay; spread > 0 {
		delay += time.Duration(s.rng.Int63n(int64(spread)))
	}
	response := s.responses[s.rng.Intn(len(s.responses))]

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.timers, timer)
		if s.closed {
			return
		}
		conv, ok := s.convs[ownerID][conversationID]
		if !ok {
			return
		}
		s.appendLocked(conv, conv.Participant.ID, response, false)
		s.logger.Debug("simulated reply delivered", "owner_id", ownerID, "conversation_id", conversationID)
	})
	s.timers[timer] = struct{}{}
}
