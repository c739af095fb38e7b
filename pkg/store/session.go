package store

// Message roles used across the chat pipeline
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// MaxHistoryMessages caps per-session history at the last 3 turns (6 messages)
const MaxHistoryMessages = 6

// Message is a single conversational message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionState represents the active user session state
type SessionState struct {
	ID string `json:"id"`

	// History holds the trailing conversation window, oldest first,
	// always alternating user/assistant pairs
	History []Message `json:"history"`

	// SystemPrompt is computed once per session and reused for its lifetime
	SystemPrompt string `json:"system_prompt"`
}

// AppendTurn records one user/assistant exchange and drops the oldest
// messages once the window exceeds MaxHistoryMessages.
func (s *SessionState) AppendTurn(userText, reply string) {
	s.History = append(s.History,
		Message{Role: RoleUser, Content: userText},
		Message{Role: RoleAssistant, Content: reply},
	)
	if len(s.History) > MaxHistoryMessages {
		s.History = s.History[len(s.History)-MaxHistoryMessages:]
	}
}
