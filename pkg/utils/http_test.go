package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteOK(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteOK(rec, http.StatusCreated, "category created", "category", map[string]string{"id": "c1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["status"])
	assert.EqualValues(t, http.StatusCreated, body["code"])
	assert.Equal(t, "category created", body["message"])
	assert.Equal(t, map[string]any{"id": "c1"}, body["category"])
}

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteErrorDetail(rec, "failed to create order", assert.AnError, http.StatusBadGateway))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["status"])
	assert.EqualValues(t, http.StatusBadGateway, body["code"])
	assert.Equal(t, assert.AnError.Error(), body["error"])
}

func TestWriteValidationError(t *testing.T) {
	type request struct {
		Name string `validate:"required"`
	}
	err := validator.New().Struct(request{})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rec, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"Name": "required"}, body["fields"])
}

func TestWriteInvalidID(t *testing.T) {
	err := validator.New().Var("not-a-uuid", "uuid")
	require.Error(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, WriteInvalidID(rec, err))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid id", decode(t, rec)["message"])
}
