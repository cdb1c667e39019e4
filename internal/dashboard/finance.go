package dashboard

import (
	"github.com/julianstephens/lifedash/internal/models"
	"github.com/julianstephens/lifedash/internal/validation"
)

// AddExpense records a money movement. The amount must be strictly positive;
// validation failures leave the collection unchanged. New records go to the
// front of the collection (most recent first).
func (d *Dashboard) AddExpense(expense models.Expense) (models.Expense, error) {
	expense.ID = newID()
	if err := validation.Expense(expense); err != nil {
		return models.Expense{}, err
	}

	d.Expenses = append([]models.Expense{expense}, d.Expenses...)
	d.persistExpenses()
	return expense, nil
}
