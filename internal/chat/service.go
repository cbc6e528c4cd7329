package chat

import (
	"context"
	"log/slog"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/llm"

	"gorm.io/gorm"
)

type Service struct {
	db           *gorm.DB
	llm          llm.Completer
	systemPrompt string
}

func NewService(db *gorm.DB, completer llm.Completer, systemPrompt string) *Service {
	return &Service{
		db:           db,
		llm:          completer,
		systemPrompt: systemPrompt,
	}
}

type Reply struct {
	Response  string
	SessionID string
}

// Chat runs one turn: load history, ask the model, then persist the user message and
// reply together. Nothing is stored unless the completion succeeds, and a reply whose
// save fails is not returned.
func (s *Service) Chat(ctx context.Context, sessionID, message string) (Reply, error) {
	sessionID = ResolveSessionID(sessionID)

	history, err := GetChatHistory(ctx, s.db, sessionID)
	if err != nil {
		slog.Error("error loading chat history", "session_id", sessionID, "error", err)
		return Reply{}, err
	}

	prompt := BuildPrompt(s.systemPrompt, history, message, HistoryWindow)

	response, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return Reply{}, err
	}

	metadata := map[string]string{"model": s.llm.Model(), "client": s.llm.Name()}
	if err := SaveChatTurn(context.WithoutCancel(ctx), s.db, sessionID, message, response, metadata); err != nil {
		slog.Error("error saving chat turn", "session_id", sessionID, "error", err)
		return Reply{}, err
	}

	slog.Info("chat turn completed", "session_id", sessionID, "history_size", len(history))
	return Reply{Response: response, SessionID: sessionID}, nil
}

func (s *Service) History(ctx context.Context, sessionID string) ([]database.ChatMessage, error) {
	return GetChatHistory(ctx, s.db, sessionID)
}
