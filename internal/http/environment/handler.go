package environment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/auth"
	"github.com/acasal/gastos/internal/environment"
)

type Handler struct {
	svc *environment.Service
}

func NewHandler(svc *environment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{environmentID}", h.get)
}

// PeopleRoutes are mounted under a single environment's people collection.
func (h *Handler) PeopleRoutes(r chi.Router) {
	r.Post("/", h.addMember)
}

type createEnvironmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createEnvironmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	env, err := h.svc.Create(r.Context(), callerID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, environment.ErrNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(env)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	envs, err := h.svc.List(r.Context(), callerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(envs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "environmentID"))
	if err != nil {
		http.Error(w, "invalid environment id", http.StatusBadRequest)
		return
	}

	env, err := h.svc.Get(r.Context(), callerID, id)
	if err != nil {
		switch {
		case errors.Is(err, environment.ErrAccessDenied):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, environment.ErrNotFound):
			http.Error(w, "environment not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(env)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addMemberRequest struct {
	PersonID uuid.UUID `json:"person_id"`
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	environmentID, err := uuid.Parse(chi.URLParam(r, "environmentID"))
	if err != nil {
		http.Error(w, "invalid environment id", http.StatusBadRequest)
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.AddMember(r.Context(), callerID, environmentID, req.PersonID); err != nil {
		switch {
		case errors.Is(err, environment.ErrAccessDenied):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, environment.ErrPersonMissing):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, environment.ErrAlreadyMember):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
