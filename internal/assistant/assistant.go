// Package assistant is the scripted goal coach. Replies come from a fixed
// keyword script; there is no model behind it.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a message
type Sender string

const (
	SenderUser Sender = "user"
	SenderNano Sender = "nano"
)

// ThinkingDelay is how long the UI pretends to think before replying
const ThinkingDelay = 1500 * time.Millisecond

const (
	Greeting = "Hello! I'm Nano, your AI assistant. How can I help you with your goals today?"

	publicSpeakingReply = "Improving public speaking is a great goal! Would you like me to create a goal for tracking your public speaking progress? I can also suggest some resources to help you get started."
	goalReply           = "I can help you set up and track your goals. Would you like to add a new goal or review your existing ones?"
	fallbackReply       = "I'm here to help you achieve your dreams. Tell me more about what you'd like to accomplish, and I can provide guidance and resources."
)

// Message is one line of the conversation
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Reply returns the scripted response for text. ok is false for blank input.
func Reply(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "public speaking"):
		return publicSpeakingReply, true
	case strings.Contains(lower, "goal"):
		return goalReply, true
	default:
		return fallbackReply, true
	}
}

// GoalAdded is what the assistant says after a goal is created
func GoalAdded(title string) string {
	return fmt.Sprintf("I've added your new goal: %q. I'll help you track your progress and provide resources to achieve it.", title)
}

// Conversation is an ordered chat transcript starting with the greeting
type Conversation struct {
	messages []Message
	now      func() time.Time
}

// NewConversation starts a transcript with Nano's greeting
func NewConversation() *Conversation {
	c := &Conversation{now: time.Now}
	c.append(SenderNano, Greeting)
	return c
}

// Send records the user's text and Nano's reply. Blank input is dropped.
func (c *Conversation) Send(text string) (Message, bool) {
	if _, ok := c.Ask(text); !ok {
		return Message{}, false
	}
	return c.Answer(text), true
}

// Ask records only the user's side, for callers that deliver the reply
// later. Blank input is dropped.
func (c *Conversation) Ask(text string) (Message, bool) {
	if _, ok := Reply(text); !ok {
		return Message{}, false
	}
	return c.append(SenderUser, text), true
}

// Answer records Nano's scripted reply to text
func (c *Conversation) Answer(text string) Message {
	reply, ok := Reply(text)
	if !ok {
		reply = fallbackReply
	}
	return c.append(SenderNano, reply)
}

// Notify records an unprompted message from Nano
func (c *Conversation) Notify(text string) Message {
	return c.append(SenderNano, text)
}

// Messages returns the transcript so far
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

func (c *Conversation) append(sender Sender, text string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: c.now(),
	}
	c.messages = append(c.messages, msg)
	return msg
}

// GetID returns the message identifier for quiet CLI output
func (m Message) GetID() string {
	return m.ID
}
