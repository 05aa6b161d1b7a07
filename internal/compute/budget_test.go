package compute_test

import (
	"testing"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetState(spent int64) models.State {
	s := models.DefaultState()
	s.SelectedMonth = march
	s.Items = []models.Item{
		item(march, models.TypeCharge, "Alice", "Courses", spent),
	}
	s.CategoryBudgets = map[string]models.CategoryBudget{
		"Courses": {Global: decimal.NewFromInt(1000)},
	}
	return s
}

func TestCategoryBudgetStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		spent      int64
		status     compute.BudgetLevel
		percentage string
		remaining  string
	}{
		{"well under the limit", 400, compute.LevelOK, "40", "600"},
		{"just below the warning threshold", 799, compute.LevelOK, "79.9", "201"},
		{"at the warning threshold", 800, compute.LevelWarning, "80", "200"},
		{"close to the limit", 850, compute.LevelWarning, "85", "150"},
		{"at the limit", 1000, compute.LevelWarning, "100", "0"},
		{"over the limit", 1050, compute.LevelOver, "105", "-50"},
		{"nothing spent", 0, compute.LevelOK, "0", "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := compute.CategoryBudgetStatus(budgetState(tt.spent), "Courses", "")
			require.NotNil(t, status)

			assert.Equal(t, tt.status, status.Status)
			assertDecimal(t, tt.percentage, status.Percentage)
			assertDecimal(t, tt.remaining, status.Remaining)
			assertDecimal(t, "1000", status.Limit)
		})
	}
}

func TestCategoryBudgetStatusNoLimit(t *testing.T) {
	s := budgetState(400)

	assert.Nil(t, compute.CategoryBudgetStatus(s, "Loyer", ""), "unknown category has no status")

	s.CategoryBudgets["Courses"] = models.CategoryBudget{Global: decimal.Zero}
	assert.Nil(t, compute.CategoryBudgetStatus(s, "Courses", ""), "a zero limit means no limit")
}

func TestCategoryBudgetStatusPerOwner(t *testing.T) {
	s := budgetState(300)
	s.Items = append(s.Items, item(march, models.TypeCharge, "Bob", "Courses", 200))
	s.CategoryBudgets["Courses"] = models.CategoryBudget{
		Global:    decimal.NewFromInt(1000),
		PerPerson: map[string]decimal.Decimal{"Alice": decimal.NewFromInt(400)},
	}

	status := compute.CategoryBudgetStatus(s, "Courses", "Alice")
	require.NotNil(t, status)
	assertDecimal(t, "400", status.Limit)
	assertDecimal(t, "300", status.Spent)
	assertDecimal(t, "75", status.Percentage)

	// Bob has no override, the global limit applies and only his items count.
	status = compute.CategoryBudgetStatus(s, "Courses", "Bob")
	require.NotNil(t, status)
	assertDecimal(t, "1000", status.Limit)
	assertDecimal(t, "200", status.Spent)
}

func TestCategoryBudgetStatusMatchesCategoryCaseInsensitively(t *testing.T) {
	s := budgetState(850)
	s.Items[0].Category = "courses"

	status := compute.CategoryBudgetStatus(s, "Courses", "")
	require.NotNil(t, status)
	assertDecimal(t, "850", status.Spent)
}
