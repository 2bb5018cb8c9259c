package person

import (
	"time"

	"github.com/google/uuid"

	"github.com/acasal/gastos/internal/person"
)

type personResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *person.Person) personResponse {
	return personResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}

func toResponseList(people []*person.Person) []personResponse {
	resp := make([]personResponse, len(people))
	for i, p := range people {
		resp[i] = toResponse(p)
	}

	return resp
}
