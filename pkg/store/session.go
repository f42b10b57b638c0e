package store

import "time"

// PendingAction marks what the next free-text message of a chat should be read as.
type PendingAction string

const (
	PendingNone            PendingAction = ""
	AwaitingProductSearch  PendingAction = "AWAITING_PRODUCT_SEARCH"
	AwaitingQuestionSearch PendingAction = "AWAITING_QUESTION_SEARCH"
)

// Session represents the conversational state of one chat in memory
type Session struct {
	ChatID       int64         `json:"chat_id"`
	LastActivity time.Time     `json:"last_activity"`
	Pending      PendingAction `json:"pending"`
}

// SessionStore is the process-wide chat session registry.
// Update runs fn under the chat's lock, so a read-modify-write on one chat
// never interleaves with another event of the same chat.
type SessionStore interface {
	Get(chatID int64) Session
	Touch(chatID int64)
	SetPending(chatID int64, action PendingAction)
	ClearPending(chatID int64)
	Update(chatID int64, fn func(s *Session)) Session
}
