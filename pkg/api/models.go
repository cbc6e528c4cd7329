package api

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type ContactRequest struct {
	Name    *string `json:"name" schema:"name"`
	Email   *string `json:"email" schema:"email"`
	Message *string `json:"message" schema:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ResumeResponse struct {
	Resume string `json:"resume"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
