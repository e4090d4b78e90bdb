package chat

import (
	"time"
)

// Participant is the other side of a conversation.
type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

type Message struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

type Conversation struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Participant Participant `json:"participant"`
	Messages    []Message   `json:"messages"`
	LastMessage *Message    `json:"last_message,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UnreadCount counts messages the owner has not read yet.
func (c *Conversation) UnreadCount() int {
	n := 0
	for _, m := range c.Messages {
		if !m.Read && m.SenderID != c.OwnerID {
			n++
		}
	}
	return n
}

func (c *Conversation) clone() *Conversation {
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	if n := len(out.Messages); n > 0 {
		out.LastMessage = &out.Messages[n-1]
	}
	return &out
}

// ConversationSummary is the list view of a conversation.
type ConversationSummary struct {
	ID          string      `json:"id"`
	Participant Participant `json:"participant"`
	LastMessage *Message    `json:"last_message,omitempty"`
	UnreadCount int         `json:"unread_count"`
}

// SendMessageRequest is the body of a send-message call.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// ConversationID is the per-owner id of a conversation with participantID.
func ConversationID(participantID string) string {
	return "conv-" + participantID
}
