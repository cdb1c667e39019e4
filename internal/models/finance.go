package models

import "github.com/shopspring/decimal"

type ExpenseType string

const (
	ExpenseTypeIncome  ExpenseType = "income"
	ExpenseTypeExpense ExpenseType = "expense"
)

func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeIncome || t == ExpenseTypeExpense
}

// Expense is a single money movement, either income or expense. Amount is
// always positive; Type carries the direction.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Type        ExpenseType     `json:"type"`
}
