package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/resume"
	"portfolio-backend/pkg/api"
)

type BackendService struct {
	db      *gorm.DB
	profile *resume.Profile
}

func NewBackendService(db *gorm.DB, profile *resume.Profile) *BackendService {
	return &BackendService{db: db, profile: profile}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/contact", RestHandler(s.SubmitContact))
	r.Get("/resume", RestHandler(s.GetResume))
}

func (s *BackendService) Root(r *http.Request) (any, error) {
	return api.StatusResponse{Message: s.profile.APITitle(), Status: "running"}, nil
}

func (s *BackendService) GetResume(r *http.Request) (any, error) {
	return api.ResumeResponse{Resume: s.profile.Resume}, nil
}

func (s *BackendService) SubmitContact(r *http.Request) (any, error) {
	req, err := ParseRequestBody[api.ContactRequest](r)
	if err != nil {
		return nil, err
	}

	name, err := requireField(req.Name, "name")
	if err != nil {
		return nil, err
	}
	email, err := requireField(req.Email, "email")
	if err != nil {
		return nil, err
	}
	message, err := requireField(req.Message, "message")
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{}
	if ua := r.UserAgent(); ua != "" {
		metadata["user_agent"] = ua
	}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		metadata["request_id"] = reqID
	}

	contact, err := database.SaveContactMessage(r.Context(), s.db, name, email, message, metadata)
	if err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to save contact message")
	}

	slog.Info("contact message received", "contact_id", contact.ID)
	return api.MessageResponse{Message: s.profile.ContactAck()}, nil
}
