// internal/contacts/handler.go
package contacts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the whole demo service.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/user", h.handleGetContact)
	r.Post("/user", h.handleCreateContact)
	r.Post("/process_dict1", h.handleProcessDict)
	r.Post("/process_dict2", h.handleProcessDictWrapped)
	return r
}

func (h *Handler) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || id <= 0 {
		http.Error(w, "user_id must be a positive integer", http.StatusBadRequest)
		return
	}

	contact, err := h.service.GetContact(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, contact)
}

func (h *Handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req Contact
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, contact, err := h.service.CreateContact(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user_id": id,
		"user":    contact,
	})
}

// handleProcessDict echoes an arbitrary JSON object back with its key count.
// No schema is enforced on the payload.
func (h *Handler) handleProcessDict(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"received_data": payload,
		"key_count":     len(payload),
	})
}

// handleProcessDictWrapped is the same passthrough with the object nested
// under a "data" key.
func (h *Handler) handleProcessDictWrapped(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"received_data": req.Data,
		"key_count":     len(req.Data),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
