package core

const (
	AgentName    = "ALICIA"
	AgentVersion = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a chat-completion conversation. Immutable once
// created.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Passage is one retrievable unit of corpus text. Indices are dense,
// zero-based and stable for the process lifetime.
type Passage struct {
	Index int
	Text  string
}

// ScoredPassage pairs a passage with its similarity score for one query.
type ScoredPassage struct {
	Passage Passage
	Score   float32
}

// Profile is the student profile inferred from conversation. Year is 1..6.
type Profile struct {
	Program string
	Year    int
}
