package chat

import (
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/llm"
)

// HistoryWindow is the number of stored messages replayed into each prompt.
// It counts messages, not tokens.
const HistoryWindow = 10

// BuildPrompt returns [system, ...last window of history, user], oldest history first.
func BuildPrompt(systemPrompt string, history []database.ChatMessage, userMessage string, window int) []llm.Message {
	if window < 0 {
		window = 0
	}
	if len(history) > window {
		history = history[len(history)-window:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})

	return messages
}
