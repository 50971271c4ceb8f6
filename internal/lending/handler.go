// internal/lending/handler.go
package lending

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bibliotek/internal/catalog"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /loans resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/borrow", h.handleBorrow)
	r.Post("/return", h.handleReturn)
	r.Get("/track", h.handleTrack)
	r.Get("/borrowed", h.handleListBorrowed)
	r.Get("/availability/{book_id}", h.handleAvailability)
	return r
}

func (h *Handler) handleBorrow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID int `json:"book_id"`
		UserID int `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loan, err := h.service.Borrow(r.Context(), req.BookID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBookNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, catalog.ErrNoCopies):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Message string `json:"message"`
		Loan
	}{Message: "Book borrowed successfully", Loan: loan})
}

func (h *Handler) handleReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LoanID int `json:"loan_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loan, err := h.service.Return(r.Context(), req.LoanID)
	if err != nil {
		switch {
		case errors.Is(err, ErrLoanNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrAlreadyReturned):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book returned successfully",
		"loan":    loan,
	})
}

func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	userID, err := optionalID(r, "user_id")
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}
	bookID, err := optionalID(r, "book_id")
	if err != nil {
		http.Error(w, "invalid book_id", http.StatusBadRequest)
		return
	}

	loans := h.service.Track(r.Context(), userID, bookID)
	writeJSON(w, http.StatusOK, map[string]any{
		"borrowings": loans,
		"total":      len(loans),
	})
}

func (h *Handler) handleListBorrowed(w http.ResponseWriter, r *http.Request) {
	borrowed := h.service.ListBorrowed(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"borrowed_books": borrowed,
		"total":          len(borrowed),
	})
}

func (h *Handler) handleAvailability(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "book_id"))
	if err != nil || bookID <= 0 {
		http.Error(w, "invalid book ID", http.StatusBadRequest)
		return
	}

	availability, err := h.service.Availability(r.Context(), bookID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, availability)
}

// optionalID parses an optional positive-integer query parameter, returning
// zero when it is absent.
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
