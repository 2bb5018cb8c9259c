package expense

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acasal/gastos/internal/auth"
	"github.com/acasal/gastos/internal/expense"
	"github.com/acasal/gastos/internal/export"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/computed", h.listComputed)
	r.Post("/compute", h.compute)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ExpenseDate   time.Time       `json:"expense_date"`
	PayerID       uuid.UUID       `json:"payer_id"`
	EnvironmentID uuid.UUID       `json:"environment_id"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), callerID, expense.CreateParams{
		Amount:        req.Amount,
		Description:   req.Description,
		ExpenseDate:   req.ExpenseDate,
		PayerID:       req.PayerID,
		EnvironmentID: req.EnvironmentID,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	callerID, environmentID, ok := h.identify(w, r)
	if !ok {
		return
	}

	expenses, err := h.svc.List(r.Context(), callerID, environmentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	ExpenseDate *time.Time       `json:"expense_date,omitempty"`
	PayerID     *uuid.UUID       `json:"payer_id,omitempty"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.Update(r.Context(), callerID, id, expense.Patch{
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: req.ExpenseDate,
		PayerID:     req.PayerID,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), callerID, id); err != nil {
		h.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listComputed(w http.ResponseWriter, r *http.Request) {
	callerID, environmentID, ok := h.identify(w, r)
	if !ok {
		return
	}

	computed, err := h.svc.ListComputed(r.Context(), callerID, environmentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toComputedResponseList(computed)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// compute archives the environment's active ledger and streams back the XLSX
// artifact. The workbook is rendered into a temp dir that is removed once
// the response has been written; by the time the client has the file, the
// archived rows are the only copy in the database.
func (h *Handler) compute(w http.ResponseWriter, r *http.Request) {
	callerID, environmentID, ok := h.identify(w, r)
	if !ok {
		return
	}

	snapshot, err := h.svc.Compute(r.Context(), callerID, environmentID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	tmpDir, err := os.MkdirTemp("", "gastos-export-*")
	if err != nil {
		slog.Error("failed to create export dir", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}
	defer os.RemoveAll(tmpDir)

	filename := export.Filename(environmentID, time.Now())

	path := filepath.Join(tmpDir, filename)
	if err := export.WriteFile(path, snapshot); err != nil {
		slog.Error("failed to write workbook", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open workbook", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := io.Copy(w, f); err != nil {
		slog.Error("failed to stream workbook", "error", err)
	}
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (callerID, environmentID uuid.UUID, ok bool) {
	callerID, ok = auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	raw := r.URL.Query().Get("environment_id")
	if raw == "" {
		http.Error(w, expense.ErrEnvironmentRequired.Error(), http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	environmentID, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid environment id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}

	return callerID, environmentID, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expense.ErrEnvironmentRequired),
		errors.Is(err, expense.ErrMissingFields),
		errors.Is(err, expense.ErrInvalidAmount),
		errors.Is(err, expense.ErrEmptyPatch),
		errors.Is(err, expense.ErrPayerNotMember),
		errors.Is(err, expense.ErrNothingToCompute):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, expense.ErrAccessDenied):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, expense.ErrNotFound):
		http.Error(w, "expense not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
