package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yusufkecer/vitalia-backend/internal/logging"
)

func postProfile(h *ProfileHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/perfil", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Save(rec, req)
	return rec
}

func TestSave_AcknowledgesAnyValidJSON(t *testing.T) {
	h := NewProfileHandler(logging.Discard())

	bodies := []string{
		`{}`,
		`{"peso": 70, "altura": 1.75, "edad": 30, "actividad": "moderada"}`,
		`{"peso": "heavy", "unknown": [1, 2, 3]}`,
		`[1, 2, 3]`,
		`"text"`,
		`null`,
		"  {\n}\n",
	}

	for _, body := range bodies {
		rec := postProfile(h, body)
		assert.Equal(t, http.StatusOK, rec.Code, body)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"success"}`, rec.Body.String(), body)
	}
}

func TestSave_EmptyAndFullProfileGetSameResponse(t *testing.T) {
	h := NewProfileHandler(logging.Discard())

	empty := postProfile(h, `{}`)
	full := postProfile(h, `{"peso": 70, "altura": 1.75, "edad": 30, "actividad": "moderada"}`)

	assert.Equal(t, empty.Code, full.Code)
	assert.Equal(t, empty.Body.String(), full.Body.String())
}

func TestSave_RejectsMalformedJSON(t *testing.T) {
	h := NewProfileHandler(logging.Discard())

	for _, body := range []string{`not json`, ``, `{"peso": 70`, `{} trailing`} {
		rec := postProfile(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
	}

	rec := postProfile(h, `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
