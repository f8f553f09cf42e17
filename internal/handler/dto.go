package handler

// === Requests ===

type GenerateRequest struct {
	Mode  string `json:"mode,omitempty"`
	Count *int   `json:"count,omitempty"`
}

type ValidateRequest struct {
	CNPJ *string `json:"cnpj"`
}

type ValidateBatchRequest struct {
	CNPJs []string `json:"cnpjs"`
}

// === Responses ===

type IdentifierResponse struct {
	Pure   string `json:"pure"`
	Masked string `json:"masked"`
}

type GenerateResponse struct {
	Identifiers []IdentifierResponse `json:"identifiers"`
}

type ValidateResponse struct {
	Pure   string `json:"pure"`
	Masked string `json:"masked,omitempty"`
	Valid  bool   `json:"valid"`
}

type ValidateBatchResponse struct {
	Results []ValidateResponse `json:"results"`
}

type MaskResponse struct {
	Masked string `json:"masked"`
}

type HistoryEntryResponse struct {
	Pure       string `json:"pure"`
	Masked     string `json:"masked,omitempty"`
	Valid      *bool  `json:"valid,omitempty"`
	RecordedAt string `json:"recorded_at"`
}

type HistoryResponse struct {
	Kind    string                 `json:"kind"`
	Entries []HistoryEntryResponse `json:"entries"`
}

type ClearHistoryResponse struct {
	Removed int `json:"removed"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
