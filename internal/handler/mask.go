package handler

import (
	"net/http"
	"strconv"
	"strings"

	"cnpj-toolkit/internal/cnpj"
)

// Mask handles GET /cnpj/mask?value=...&progressive=true requests.
func (h *Handler) Mask(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	value := query.Get("value")
	if value == "" {
		h.writeError(w, http.StatusBadRequest, "validation_error", "value is required")
		return
	}
	if err := validateInput(value); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	progressive := false
	if raw := query.Get("progressive"); raw != "" {
		var err error
		progressive, err = strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "validation_error", "progressive must be a boolean")
			return
		}
	}

	pure := strings.ToUpper(cnpj.StripMask(value))

	masked := cnpj.ApplyMask(pure)
	if progressive {
		masked = cnpj.ApplyProgressiveMask(pure)
	}

	h.writeJSON(w, http.StatusOK, MaskResponse{Masked: masked})
}
