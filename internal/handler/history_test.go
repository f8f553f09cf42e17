package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cnpj-toolkit/internal/domain"
	"cnpj-toolkit/internal/handler"
	"cnpj-toolkit/internal/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryHandler_Generated(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	mockService.On("GeneratedHistory", mock.Anything).Return([]history.Entry[domain.Identifier]{
		{Value: domain.Identifier{Pure: "12ABC34501DE35", Masked: "12.ABC.345/01DE-35"}, RecordedAt: at},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/cnpj/history/generated", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "generated", resp.Kind)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "12.ABC.345/01DE-35", resp.Entries[0].Masked)
	assert.Equal(t, "2026-03-02T12:00:00Z", resp.Entries[0].RecordedAt)
	assert.Nil(t, resp.Entries[0].Valid)
}

func TestHistoryHandler_Validated(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	at := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	mockService.On("ValidationHistory", mock.Anything).Return([]history.Entry[domain.ValidationResult]{
		{Value: domain.ValidationResult{Pure: "00000000000000"}, RecordedAt: at.Add(time.Minute)},
		{Value: domain.ValidationResult{Pure: "11444777000161", Valid: true}, RecordedAt: at},
	}, nil)

	rec := doRequest(t, router, http.MethodGet, "/cnpj/history/validated", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	require.NotNil(t, resp.Entries[0].Valid)
	assert.False(t, *resp.Entries[0].Valid)
	require.NotNil(t, resp.Entries[1].Valid)
	assert.True(t, *resp.Entries[1].Valid)
}

func TestHistoryHandler_EmptyListsAsArray(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	mockService.On("GeneratedHistory", mock.Anything).Return([]history.Entry[domain.Identifier]{}, nil)

	rec := doRequest(t, router, http.MethodGet, "/cnpj/history/generated", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"kind": "generated", "entries": []}`, rec.Body.String())
}

func TestHistoryHandler_UnknownKind_Returns404(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	rec := doRequest(t, router, http.MethodGet, "/cnpj/history/deleted", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)
	mockService.AssertNotCalled(t, "GeneratedHistory")
	mockService.AssertNotCalled(t, "ValidationHistory")
}

func TestClearHistoryHandler(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	mockService.On("ClearHistory", mock.Anything).Return(7, nil)

	rec := doRequest(t, router, http.MethodDelete, "/cnpj/history", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed": 7}`, rec.Body.String())
}

func TestClearHistoryHandler_ServiceError_Returns500(t *testing.T) {
	mockService := new(MockCNPJService)
	router := newRouter(mockService)

	mockService.On("ClearHistory", mock.Anything).Return(0, errors.New("boom"))

	rec := doRequest(t, router, http.MethodDelete, "/cnpj/history", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
