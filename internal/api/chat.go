package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/llm"
	"portfolio-backend/pkg/api"
)

type ChatService struct {
	chat *chat.Service
}

func NewChatService(service *chat.Service) *ChatService {
	return &ChatService{chat: service}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Route("/chat", func(r chi.Router) {
		r.Post("/", RestHandler(s.SendMessage))
		r.Get("/history/{session_id}", RestHandler(s.GetHistory))
	})
}

func (s *ChatService) SendMessage(r *http.Request) (any, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, err
	}

	message, err := requireField(req.Message, "message")
	if err != nil {
		return nil, err
	}

	var sessionID string
	if req.SessionID != nil {
		sessionID = *req.SessionID
	}

	reply, err := s.chat.Chat(r.Context(), sessionID, message)
	if err != nil {
		var serviceErr *llm.ServiceError
		switch {
		case errors.Is(err, llm.ErrMissingAPIKey):
			return nil, CodedError(http.StatusInternalServerError, err)
		case errors.As(err, &serviceErr):
			return nil, CodedErrorf(http.StatusInternalServerError, "AI service error: %s", serviceErr.Error())
		default:
			return nil, fmt.Errorf("chat turn failed: %w", err)
		}
	}

	return api.ChatResponse{Response: reply.Response, SessionID: reply.SessionID}, nil
}

func (s *ChatService) GetHistory(r *http.Request) (any, error) {
	sessionID, err := URLParam(r, "session_id")
	if err != nil {
		return nil, err
	}

	history, err := s.chat.History(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}

	resp := api.ChatHistoryResponse{
		SessionID: sessionID,
		Messages:  make([]api.ChatHistoryItem, 0, len(history)),
	}
	for _, msg := range history {
		resp.Messages = append(resp.Messages, api.ChatHistoryItem{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	return resp, nil
}
