package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifedash/internal/analytics"
	"github.com/julianstephens/lifedash/internal/dates"
	"github.com/julianstephens/lifedash/internal/models"
)

type ExpenseAddCmd struct {
	Amount      string `arg:"" help:"Amount, e.g. 12.50."`
	Category    string `short:"c" help:"Expense category." default:"Other"`
	Description string `arg:"" optional:"" help:"What the money was for."`
	Date        string `short:"d" help:"Day (YYYY-MM-DD), defaults to today."`
	Income      bool   `help:"Record as income instead of an expense."`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	day, err := dayOrToday(c.Date)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", c.Amount, err)
	}

	kind := models.ExpenseTypeExpense
	if c.Income {
		kind = models.ExpenseTypeIncome
	}

	expense, err := ctx.Dashboard.AddExpense(models.Expense{
		Amount:      amount,
		Category:    c.Category,
		Description: c.Description,
		Date:        day,
		Type:        kind,
	})
	if err != nil {
		return ctx.report(err)
	}
	ctx.Notify.Success(fmt.Sprintf("Recorded %s %s (%s)", expense.Type, expense.Amount.StringFixed(2), expense.Category))
	return nil
}

type ExpenseListCmd struct{}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	now := time.Now()
	summary := analytics.MonthlySummary(ctx.Dashboard.Expenses, now)

	fmt.Printf("%s\n", dates.MonthName(now))
	fmt.Printf("  Income:   %s\n", summary.Income.StringFixed(2))
	fmt.Printf("  Expenses: %s\n", summary.Expenses.StringFixed(2))
	fmt.Printf("  Net:      %s\n", summary.Net.StringFixed(2))

	if len(summary.ByCategory) > 0 {
		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Println("\nBy category:")
		for _, category := range categories {
			fmt.Printf("  %-15s %s\n", category, summary.ByCategory[category].StringFixed(2))
		}
	}

	for _, e := range ctx.Dashboard.Expenses {
		if !dates.SameMonth(e.Date, now) {
			continue
		}
		sign := "-"
		if e.Type == models.ExpenseTypeIncome {
			sign = "+"
		}
		fmt.Printf("%s  %s%s  %-15s %s\n", e.Date, sign, e.Amount.StringFixed(2), e.Category, e.Description)
	}
	return nil
}
