package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cnpj-toolkit/internal/domain"
)

// Generate handles POST /cnpj/generate requests. An empty body generates a
// single identifier in the default mode.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
		if err := validateCount(count); err != nil {
			h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	ids, err := h.service.GenerateBatch(r.Context(), mode, count)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGenerationExhausted):
			h.writeError(w, http.StatusServiceUnavailable, "generation_exhausted", "could not generate a valid identifier, try again")
		case errors.Is(err, domain.ErrInvalidCount), errors.Is(err, domain.ErrInvalidMode):
			h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			h.writeInternalError(w, r, err, "failed to generate identifier")
		}
		return
	}

	resp := GenerateResponse{Identifiers: make([]IdentifierResponse, 0, len(ids))}
	for _, id := range ids {
		resp.Identifiers = append(resp.Identifiers, IdentifierResponse{Pure: id.Pure, Masked: id.Masked})
	}

	h.writeJSON(w, http.StatusCreated, resp)
}
