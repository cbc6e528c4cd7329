package api

import "time"

type ChatRequest struct {
	Message   *string `json:"message"`
	SessionID *string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type ChatHistoryItem struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []ChatHistoryItem `json:"messages"`
}
