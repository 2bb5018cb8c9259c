package person

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/auth"
	"github.com/acasal/gastos/internal/person"
)

type Handler struct {
	svc *person.Service
	jwt *auth.JWTManager
}

func NewHandler(svc *person.Service, jwt *auth.JWTManager) *Handler {
	return &Handler{svc: svc, jwt: jwt}
}

// Routes are the public authentication endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

// ProtectedRoutes require an authenticated caller.
func (h *Handler) ProtectedRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

// EnvironmentRoutes are mounted under a single environment.
func (h *Handler) EnvironmentRoutes(r chi.Router) {
	r.Get("/", h.listByEnvironment)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string         `json:"token"`
	Person personResponse `json:"person"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, person.ErrMissingFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, person.ErrEmailExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	h.respondWithToken(w, p, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, person.ErrInvalidCredentials) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.respondWithToken(w, p, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.PersonID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	p, err := h.svc.Get(r.Context(), callerID)
	if err != nil {
		if errors.Is(err, person.ErrNotFound) {
			http.Error(w, "person not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listByEnvironment(w http.ResponseWriter, r *http.Request) {
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

	people, err := h.svc.ListInEnvironment(r.Context(), callerID, environmentID)
	if err != nil {
		if errors.Is(err, person.ErrAccessDenied) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(people)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) respondWithToken(w http.ResponseWriter, p *person.Person, status int) {
	token, err := h.jwt.Generate(p.ID, p.Email)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(authResponse{
		Token:  token,
		Person: toResponse(p),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
