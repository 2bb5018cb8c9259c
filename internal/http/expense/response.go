package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acasal/gastos/internal/expense"
)

type expenseResponse struct {
	ID               uuid.UUID         `json:"id"`
	Amount           decimal.Decimal   `json:"amount"`
	Description      string            `json:"description"`
	ExpenseDate      time.Time         `json:"expense_date"`
	PayerID          uuid.UUID         `json:"payer_id"`
	PayerName        string            `json:"payer_name"`
	RegisteredByID   uuid.UUID         `json:"registered_by_id"`
	RegisteredByName string            `json:"registered_by_name"`
	EnvironmentID    uuid.UUID         `json:"environment_id"`
	Category         *categoryResponse `json:"category,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type categoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color *string   `json:"color,omitempty"`
	Icon  *string   `json:"icon,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	resp := expenseResponse{
		ID:               e.ID,
		Amount:           e.Amount,
		Description:      e.Description,
		ExpenseDate:      e.ExpenseDate,
		PayerID:          e.PayerID,
		PayerName:        e.PayerName,
		RegisteredByID:   e.RegisteredByID,
		RegisteredByName: e.RegisteredByName,
		EnvironmentID:    e.EnvironmentID,
		CreatedAt:        e.CreatedAt,
	}

	if e.Category != nil {
		resp.Category = &categoryResponse{
			ID:    e.Category.ID,
			Name:  e.Category.Name,
			Color: e.Category.Color,
			Icon:  e.Category.Icon,
		}
	}

	return resp
}

func toResponseList(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}

type computedExpenseResponse struct {
	ID               uuid.UUID       `json:"id"`
	ExpenseID        uuid.UUID       `json:"expense_id"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	ExpenseDate      time.Time       `json:"expense_date"`
	PayerID          uuid.UUID       `json:"payer_id"`
	PayerName        string          `json:"payer_name"`
	RegisteredByID   uuid.UUID       `json:"registered_by_id"`
	RegisteredByName string          `json:"registered_by_name"`
	EnvironmentID    uuid.UUID       `json:"environment_id"`
	ComputedByID     uuid.UUID       `json:"computed_by_id"`
	ComputedByName   string          `json:"computed_by_name"`
	ComputedAt       time.Time       `json:"computed_at"`
}

func toComputedResponseList(computed []*expense.ComputedExpense) []computedExpenseResponse {
	resp := make([]computedExpenseResponse, len(computed))
	for i, ce := range computed {
		resp[i] = computedExpenseResponse{
			ID:               ce.ID,
			ExpenseID:        ce.ExpenseID,
			Amount:           ce.Amount,
			Description:      ce.Description,
			ExpenseDate:      ce.ExpenseDate,
			PayerID:          ce.PayerID,
			PayerName:        ce.PayerName,
			RegisteredByID:   ce.RegisteredByID,
			RegisteredByName: ce.RegisteredByName,
			EnvironmentID:    ce.EnvironmentID,
			ComputedByID:     ce.ComputedByID,
			ComputedByName:   ce.ComputedByName,
			ComputedAt:       ce.ComputedAt,
		}
	}

	return resp
}
