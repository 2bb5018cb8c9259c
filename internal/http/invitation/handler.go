package invitation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/auth"
	"github.com/acasal/gastos/internal/invitation"
)

type Handler struct {
	svc *invitation.Service
}

func NewHandler(svc *invitation.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes let an invitee inspect a link before signing in.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/{token}", h.inspect)
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{token}/accept", h.accept)
}

// EnvironmentRoutes are mounted under a single environment.
func (h *Handler) EnvironmentRoutes(r chi.Router) {
	r.Post("/", h.create)
}

type invitationResponse struct {
	Token           string    `json:"token"`
	EnvironmentID   uuid.UUID `json:"environment_id"`
	EnvironmentName string    `json:"environment_name,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
}

func toResponse(inv *invitation.Invitation) invitationResponse {
	return invitationResponse{
		Token:           inv.Token,
		EnvironmentID:   inv.EnvironmentID,
		EnvironmentName: inv.EnvironmentName,
		ExpiresAt:       inv.ExpiresAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
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

	inv, err := h.svc.Create(r.Context(), callerID, environmentID)
	if err != nil {
		if errors.Is(err, invitation.ErrAccessDenied) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) inspect(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.Inspect(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		switch {
		case errors.Is(err, invitation.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, invitation.ErrExpiredOrUsed):
			http.Error(w, err.Error(), http.StatusGone)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type acceptResponse struct {
	EnvironmentID uuid.UUID `json:"environment_id"`
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	environmentID, err := h.svc.Accept(r.Context(), callerID, chi.URLParam(r, "token"))
	if err != nil {
		switch {
		case errors.Is(err, invitation.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, invitation.ErrExpiredOrUsed):
			http.Error(w, err.Error(), http.StatusGone)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(acceptResponse{EnvironmentID: environmentID}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
