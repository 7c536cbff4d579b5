package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in the dashboard chat transcript.
type Message struct {
	ID      string
	Role    MessageRole
	Content string
	SentAt  time.Time
}

// ChatSession is the mock conversation attached to the dashboard. The
// assistant side is simulated; replies are canned acknowledgements shaped
// by the onboarding profile.
type ChatSession struct {
	ID       string
	Messages []Message
	now      func() time.Time
}

// NewChatSession opens a session seeded with the assistant greeting derived
// from the user and company profiles.
func NewChatSession(s *State) *ChatSession {
	cs := &ChatSession{
		ID:  uuid.NewString(),
		now: time.Now,
	}
	cs.Messages = append(cs.Messages, Message{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: Greeting(s),
		SentAt:  cs.now(),
	})
	return cs
}

// Greeting builds the assistant's opening line from the onboarding state.
func Greeting(s *State) string {
	name := firstName(s.User.FullName)
	if name == "" {
		name = "there"
	}
	company := s.Company.Name
	if company == "" {
		company = "your company"
	}
	role := s.Personalization.Role.DisplayName()
	if s.Personalization.Role == "" {
		role = "assistant"
	}
	return fmt.Sprintf(
		"Hello %s! I am the personalized %s for %s. I am configured with your onboarding context and ready to help. What would you like to work on first?",
		name, strings.ToLower(role), company,
	)
}

// Send appends a user message followed by the simulated assistant reply.
// Blank or whitespace-only input is rejected and leaves the transcript
// untouched.
func (cs *ChatSession) Send(s *State, content string) (Message, bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Message{}, false
	}
	cs.Messages = append(cs.Messages, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: trimmed,
		SentAt:  cs.now(),
	})
	reply := Message{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: simulatedReply(s, trimmed, len(cs.Messages)),
		SentAt:  cs.now(),
	}
	cs.Messages = append(cs.Messages, reply)
	return reply, true
}

// UserMessageCount returns the number of user-authored messages.
func (cs *ChatSession) UserMessageCount() int {
	n := 0
	for _, m := range cs.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// simulatedReply produces a deterministic canned answer. The rotation keeps
// consecutive replies from repeating while staying reproducible in tests.
func simulatedReply(s *State, prompt string, turn int) string {
	company := s.Company.Name
	if company == "" {
		company = "your company"
	}
	templates := []string{
		"Good question. Based on the profile of %s I would start by mapping the current process before changing it. Could you share more detail on the scope?",
		"Understood. For %s my recommendation is to break this into a short diagnostic phase followed by one pilot initiative, so results stay measurable.",
		"Let me reason through that in the context of %s. The key constraint is usually data availability; once that is confirmed we can draft an action plan.",
		"That aligns with the priorities you selected during onboarding. For %s I suggest we define one success metric first and work backwards from it.",
	}
	t := templates[turn%len(templates)]
	_ = prompt
	return fmt.Sprintf(t, company)
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
