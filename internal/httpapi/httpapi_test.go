package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darionassist/internal/assist"
)

func newTestRoutes() http.Handler {
	engine := assist.New(assist.DefaultVocabulary, assist.DefaultCorrections, nil)
	return New(engine).Routes()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAutocomplete(t *testing.T) {
	h := newTestRoutes()
	rec := post(t, h, "/autocomplete/", `{"code": "let x = pri"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "print", res.Suggestions[0])
	assert.LessOrEqual(t, len(res.Suggestions), 3)
}

func TestAutocompleteTrailingWhitespace(t *testing.T) {
	h := newTestRoutes()
	rec := post(t, h, "/autocomplete/", `{"code": "let x "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"suggestions":[]`,
		"no last token means an empty array, never null")
}

func TestAutocompleteEmptyCode(t *testing.T) {
	h := newTestRoutes()
	rec := post(t, h, "/autocomplete/", `{"code": ""}`)
	require.Equal(t, http.StatusOK, rec.Code, "empty buffer is a valid request")
	assert.Contains(t, rec.Body.String(), `"suggestions":[]`)
}

func TestCorrect(t *testing.T) {
	h := newTestRoutes()
	rec := post(t, h, "/correct/", `{"code": "funtion prnt"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		CorrectedCode string `json:"corrected_code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "function print", res.CorrectedCode)
}

func TestBadRequests(t *testing.T) {
	h := newTestRoutes()
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/correct/", `{"code": `},
		{"missing field", "/correct/", `{}`},
		{"wrong field", "/autocomplete/", `{"text": "pri"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestWrongMethod(t *testing.T) {
	h := newTestRoutes()
	req := httptest.NewRequest(http.MethodGet, "/correct/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	h := newTestRoutes()
	rec := post(t, h, "/correct/", `{"code": ""}`)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRoutes()
	req := httptest.NewRequest(http.MethodOptions, "/autocomplete/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCustomKeywordLifecycle(t *testing.T) {
	h := newTestRoutes()

	rec := post(t, h, "/api/v1/custom-keyword", `{"word": "matrix"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = post(t, h, "/autocomplete/", `{"code": "matr"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matrix"`)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/custom-keyword/matrix", nil)
	del := httptest.NewRecorder()
	h.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code)

	rec = post(t, h, "/autocomplete/", `{"code": "matr"}`)
	assert.NotContains(t, rec.Body.String(), `"matrix"`)
}

func TestCustomKeywordBadRequests(t *testing.T) {
	h := newTestRoutes()

	rec := post(t, h, "/api/v1/custom-keyword", `{"word": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/custom-keyword/", nil)
	del := httptest.NewRecorder()
	h.ServeHTTP(del, req)
	assert.Equal(t, http.StatusBadRequest, del.Code)
}
