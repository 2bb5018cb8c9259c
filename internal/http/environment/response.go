package environment

import (
	"time"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/environment"
)

type environmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(env *environment.Environment) environmentResponse {
	return environmentResponse{
		ID:          env.ID,
		Name:        env.Name,
		Description: env.Description,
		CreatedAt:   env.CreatedAt,
	}
}

func toResponseList(envs []*environment.Environment) []environmentResponse {
	resp := make([]environmentResponse, len(envs))
	for i, env := range envs {
		resp[i] = toResponse(env)
	}

	return resp
}
