// Package httpapi exposes the assist engine to the browser editor. The
// transport is deliberately thin: it extracts strings from JSON bodies,
// calls the engine, and writes JSON back.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"darionassist/internal/assist"
)

type Handler struct {
	engine *assist.Engine
}

func New(engine *assist.Engine) *Handler {
	return &Handler{engine: engine}
}

// Routes returns the service mux with CORS applied to every route.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/autocomplete/", h.autocomplete)
	mux.HandleFunc("/correct/", h.correct)
	mux.HandleFunc("/api/v1/custom-keyword", h.addCustomKeyword)
	mux.HandleFunc("/api/v1/custom-keyword/", h.removeCustomKeyword)
	return cors(mux)
}

// codeRequest carries the editor buffer. Code is a pointer so that a
// missing field can be told apart from an empty buffer, which is valid.
type codeRequest struct {
	Code *string `json:"code"`
}

func (h *Handler) autocomplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	suggestions := h.engine.Suggest(assist.LastToken(*req.Code))
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}

func (h *Handler) correct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req codeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"corrected_code": h.engine.Correct(*req.Code),
	})
}

func (h *Handler) addCustomKeyword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.engine.AddCustomKeyword(r.Context(), req.Word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *Handler) removeCustomKeyword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-keyword/")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := h.engine.RemoveCustomKeyword(r.Context(), word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// cors allows the browser editor to call the service from any origin.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
