package core

import "time"

const (
	AppName    = "BankAssist"
	AppVersion = "0.1.0"
)

// Source tags attached to a turn's provenance.
const (
	SourceFAQ      = "faq"
	SourceFallback = "fallback"
)

// FAQSource identifies the corpus entry a turn was grounded on.
type FAQSource struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"`
}

// ConversationTurn is one answered question. Immutable once created.
type ConversationTurn struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	Sources   []FAQSource `json:"sources,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// AnswerResult is the normalized engine response: always the same shape,
// regardless of which provider produced the answer or whether it degraded.
type AnswerResult struct {
	Answer   string      `json:"answer"`
	Sources  []FAQSource `json:"sources,omitempty"`
	Sequence int         `json:"sequence"`
}
