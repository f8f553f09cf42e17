package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	historyGenerated = "generated"
	historyValidated = "validated"
)

// History handles GET /cnpj/history/{kind} requests.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	resp := HistoryResponse{Kind: kind, Entries: []HistoryEntryResponse{}}

	switch kind {
	case historyGenerated:
		entries, err := h.service.GeneratedHistory(r.Context())
		if err != nil {
			h.writeInternalError(w, r, err, "failed to list history")
			return
		}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, HistoryEntryResponse{
				Pure:       e.Value.Pure,
				Masked:     e.Value.Masked,
				RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
			})
		}
	case historyValidated:
		entries, err := h.service.ValidationHistory(r.Context())
		if err != nil {
			h.writeInternalError(w, r, err, "failed to list history")
			return
		}
		for _, e := range entries {
			valid := e.Value.Valid
			resp.Entries = append(resp.Entries, HistoryEntryResponse{
				Pure:       e.Value.Pure,
				Valid:      &valid,
				RecordedAt: e.RecordedAt.UTC().Format(time.RFC3339),
			})
		}
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "history kind must be generated or validated")
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// ClearHistory handles DELETE /cnpj/history requests.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.ClearHistory(r.Context())
	if err != nil {
		h.writeInternalError(w, r, err, "failed to clear history")
		return
	}

	h.writeJSON(w, http.StatusOK, ClearHistoryResponse{Removed: removed})
}
