package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/history"
	pkglog "cnpj-toolkit/internal/log"
)

// CNPJService defines the service interface.
// This allows testing handlers without real service implementation.
type CNPJService interface {
	GenerateBatch(ctx context.Context, mode domain.Mode, count int) ([]domain.Identifier, error)
	Validate(ctx context.Context, raw string) (domain.ValidationResult, error)
	ValidateBatch(ctx context.Context, raws []string) ([]domain.ValidationResult, error)
	GeneratedHistory(ctx context.Context) ([]history.Entry[domain.Identifier], error)
	ValidationHistory(ctx context.Context) ([]history.Entry[domain.ValidationResult], error)
	ClearHistory(ctx context.Context) (int, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	service CNPJService
}

// New creates a new Handler with the given dependencies.
func New(service CNPJService) *Handler {
	return &Handler{service: service}
}

// Register mounts the identifier endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/cnpj", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/validate", h.Validate)
		r.Post("/validate/batch", h.ValidateBatch)
		r.Get("/mask", h.Mask)
		r.Get("/history/{kind}", h.History)
		r.Delete("/history", h.ClearHistory)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func (h *Handler) writeInternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	l := pkglog.Ctx(r.Context())
	l.Error().Err(err).Msg(message)
	h.writeError(w, http.StatusInternalServerError, "internal_error", message)
}
