package model

import "time"

// Sender identifies who wrote a transcript message.
type Sender string

const (
	SenderAssistant Sender = "assistant"
	SenderUser      Sender = "user"
)

// Message is one transcript entry. ID is stable for the life of the message.
type Message struct {
	ID        string
	Sender    Sender
	Text      string
	Timestamp time.Time
	Failed    bool
}

// ChatRequest is the body of a chat search query.
type ChatRequest struct {
	UserID int    `json:"user_id"`
	Query  string `json:"query"`
}

// ChatResponse is the chat gateway's answer.
type ChatResponse struct {
	LogID      int        `json:"log_id"`
	Question   string     `json:"question"`
	Answer     string     `json:"llm_answer"`
	CardResult CardResult `json:"card_result"`
}
