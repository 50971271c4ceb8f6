// internal/reports/handler.go
package reports

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bibliotek/internal/lending"
	"bibliotek/internal/membership"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// AdminRoutes returns the router mounted under /users/admin.
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/overdue", h.handleOverdue)
	r.Get("/most-borrowed", h.handleMostBorrowed)
	r.Get("/history", h.handleHistory)
	r.Post("/receipt", h.handleReceipt)
	r.Post("/login", h.handleLogin)
	r.Get("/dashboard", h.HandleDashboard)
	return r
}

func (h *Handler) handleOverdue(w http.ResponseWriter, r *http.Request) {
	overdue := h.service.Overdue(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"overdue_books": overdue,
		"total":         len(overdue),
	})
}

func (h *Handler) handleMostBorrowed(w http.ResponseWriter, r *http.Request) {
	stats, ok := h.service.MostBorrowed(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "No borrowing history found",
		})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	filter := HistoryFilter{Status: r.URL.Query().Get("status")}

	var err error
	if filter.UserID, err = optionalID(r, "user_id"); err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}
	if filter.BookID, err = optionalID(r, "book_id"); err != nil {
		http.Error(w, "invalid book_id", http.StatusBadRequest)
		return
	}

	history := h.service.History(r.Context(), filter)
	writeJSON(w, http.StatusOK, map[string]any{
		"history": history,
		"total":   len(history),
	})
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LoanID int `json:"loan_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.service.GenerateReceipt(r.Context(), req.LoanID)
	if err != nil {
		if errors.Is(err, lending.ErrLoanNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		Receipt
	}{Message: "Receipt generated successfully", Receipt: receipt})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			http.Error(w, err.Error(), http.StatusTooManyRequests)
			return
		}
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    req.Username,
		"role":    membership.RoleAdmin,
		"token":   token,
	})
}

// HandleDashboard serves the aggregate counters; it is mounted at /dashboard
// rather than under the admin prefix.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard(r.Context()))
}

func optionalID(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
