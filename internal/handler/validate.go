package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"cnpj-toolkit/internal/cnpj"
	"cnpj-toolkit/internal/domain"
)

// Validate handles POST /cnpj/validate requests. An invalid identifier is
// reported with 200 and valid=false.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	if req.CNPJ == nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", "cnpj is required")
		return
	}
	if err := validateInput(*req.CNPJ); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.service.Validate(r.Context(), *req.CNPJ)
	if err != nil {
		h.writeInternalError(w, r, err, "failed to validate identifier")
		return
	}

	h.writeJSON(w, http.StatusOK, toValidateResponse(result))
}

// ValidateBatch handles POST /cnpj/validate/batch requests.
func (h *Handler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	var req ValidateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	if err := validateBatch(req.CNPJs); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	results, err := h.service.ValidateBatch(r.Context(), req.CNPJs)
	if err != nil {
		if errors.Is(err, domain.ErrBatchTooLarge) {
			h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		h.writeInternalError(w, r, err, "failed to validate identifiers")
		return
	}

	resp := ValidateBatchResponse{Results: make([]ValidateResponse, 0, len(results))}
	for _, result := range results {
		resp.Results = append(resp.Results, toValidateResponse(result))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func toValidateResponse(result domain.ValidationResult) ValidateResponse {
	resp := ValidateResponse{Pure: result.Pure, Valid: result.Valid}
	if result.Valid {
		resp.Masked = cnpj.ApplyMask(result.Pure)
	}
	return resp
}
