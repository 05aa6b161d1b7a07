package compute

import (
	"strings"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetLevel classifies spending against a category limit.
type BudgetLevel string

const (
	LevelOK      BudgetLevel = "ok"
	LevelWarning BudgetLevel = "warning"
	LevelOver    BudgetLevel = "over"
)

// BudgetStatus reports the selected month's spending for one category
// against its configured limit.
type BudgetStatus struct {
	Status     BudgetLevel     `json:"status"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

var warningThreshold = decimal.NewFromInt(80)

// CategoryBudgetStatus resolves the effective limit for the category —
// the per-owner limit when owner is given and configured, the global
// limit otherwise — and classifies the month's spending against it.
// It returns nil when no positive limit is configured.
func CategoryBudgetStatus(s models.State, category, owner string) *BudgetStatus {
	budget, ok := s.CategoryBudgets[category]
	if !ok {
		return nil
	}

	limit := budget.Global
	if owner != "" {
		if perPerson, ok := budget.PerPerson[owner]; ok {
			limit = perPerson
		}
	}
	if !limit.IsPositive() {
		return nil
	}

	spent := sumCurrentMonth(s, func(i models.Item) bool {
		if i.Type != models.TypeCharge || !strings.EqualFold(i.Category, category) {
			return false
		}
		return owner == "" || i.OwnedBy(owner)
	})

	percentage := spent.Div(limit).Mul(hundred).Round(1)

	status := LevelOK
	switch {
	case percentage.GreaterThan(hundred):
		status = LevelOver
	case percentage.GreaterThanOrEqual(warningThreshold):
		status = LevelWarning
	}

	return &BudgetStatus{
		Status:     status,
		Limit:      limit,
		Spent:      spent,
		Remaining:  limit.Sub(spent),
		Percentage: percentage,
	}
}
