package trip

import (
	"time"

	"github.com/google/uuid"
)

// GroupWindow is the maximum gap between two consecutive messages from
// the same sender for them to render as one group.
const GroupWindow = 5 * time.Minute

// Message is one chat message in the trip's group discussion.
type Message struct {
	ID       string    `json:"id"`
	SenderID string    `json:"senderId"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sentAt"`
}

// MessageGroup is a run of consecutive messages from one sender, headed
// by the first message's timestamp.
type MessageGroup struct {
	SenderID string
	SentAt   time.Time
	Messages []Message
}

// ShouldGroup reports whether next belongs in the same display group as
// prev: same sender and sent less than GroupWindow after it.
func ShouldGroup(prev, next Message) bool {
	if prev.SenderID != next.SenderID {
		return false
	}
	gap := next.SentAt.Sub(prev.SentAt)
	return gap >= 0 && gap < GroupWindow
}

// GroupMessages folds an ordered message sequence into display groups.
func GroupMessages(messages []Message) []MessageGroup {
	var groups []MessageGroup
	for i, msg := range messages {
		if i > 0 && ShouldGroup(messages[i-1], msg) {
			last := &groups[len(groups)-1]
			last.Messages = append(last.Messages, msg)
			continue
		}
		groups = append(groups, MessageGroup{
			SenderID: msg.SenderID,
			SentAt:   msg.SentAt,
			Messages: []Message{msg},
		})
	}
	return groups
}

// ChatLog holds the message list and its append-only local mutation.
type ChatLog struct {
	messages []Message
}

// NewChatLog seeds a log with the given messages.
func NewChatLog(messages []Message) *ChatLog {
	return &ChatLog{messages: append([]Message(nil), messages...)}
}

// Messages returns the log in send order.
func (c *ChatLog) Messages() []Message {
	return c.messages
}

// Len returns the number of messages.
func (c *ChatLog) Len() int {
	return len(c.messages)
}

// Append adds a message from sender and returns it.
func (c *ChatLog) Append(senderID, content string, now time.Time) Message {
	msg := Message{
		ID:       uuid.NewString(),
		SenderID: senderID,
		Content:  content,
		SentAt:   now,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// CountSince returns how many messages were sent at or after t.
func (c *ChatLog) CountSince(t time.Time) int {
	n := 0
	for _, m := range c.messages {
		if !m.SentAt.Before(t) {
			n++
		}
	}
	return n
}
