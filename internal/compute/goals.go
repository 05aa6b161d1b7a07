package compute

import (
	"strings"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalProgress is the running state of one savings goal.
type GoalProgress struct {
	TotalSaved decimal.Decimal `json:"totalSaved"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Progress derives the goal's saved total, the amount still missing
// (floored at 0) and the completion percentage (capped at 100, 0 for a
// zero target).
func Progress(goal models.SavingsGoal) GoalProgress {
	saved := goal.TotalSaved()

	remaining := goal.TargetAmount.Sub(saved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percentage = saved.Div(goal.TargetAmount).Mul(hundred).Round(1)
		if percentage.GreaterThan(hundred) {
			percentage = hundred
		}
	}

	return GoalProgress{
		TotalSaved: saved,
		Remaining:  remaining,
		Percentage: percentage,
	}
}

// GoalByID returns the goal with the given id.
func GoalByID(s models.State, id uuid.UUID) (models.SavingsGoal, bool) {
	for _, goal := range s.SavingsGoals {
		if goal.ID == id {
			return goal, true
		}
	}
	return models.SavingsGoal{}, false
}

// ActiveGoals returns the goals whose target is not reached yet.
func ActiveGoals(s models.State) []models.SavingsGoal {
	active := []models.SavingsGoal{}
	for _, goal := range s.SavingsGoals {
		if goal.TotalSaved().LessThan(goal.TargetAmount) {
			active = append(active, goal)
		}
	}
	return active
}

// TotalAllocatedForMonth sums what was put aside in the month,
// attributed to one owner: allocations of the owner's personal goals
// count in full, joint-goal allocations count only when explicitly
// tagged with the owner's name, and other owners' personal goals
// contribute nothing. With an empty owner every allocation of the
// month counts.
func TotalAllocatedForMonth(s models.State, month types.Month, owner string) decimal.Decimal {
	sum := decimal.Zero
	for _, goal := range s.SavingsGoals {
		if owner != "" && !goal.Joint() && !goal.OwnedBy(owner) {
			continue
		}

		for _, alloc := range goal.Allocations {
			if !alloc.Month.Equal(month) {
				continue
			}
			if owner != "" && goal.Joint() &&
				(alloc.Owner == nil || !strings.EqualFold(*alloc.Owner, owner)) {
				continue
			}
			sum = sum.Add(alloc.Amount)
		}
	}
	return sum
}
