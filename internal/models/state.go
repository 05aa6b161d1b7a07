package models

import (
	"github.com/budget-foyer/backend/internal/types"
	"github.com/shopspring/decimal"
)

// State is the full record snapshot: everything the store owns and
// everything that is persisted, verbatim.
type State struct {
	Settings
	Items                  []Item                    `json:"items"`
	RecurringItems         []RecurringItem           `json:"recurringItems"`
	AppliedRecurringMonths []types.Month             `json:"appliedRecurringMonths"`
	CategoryBudgets        map[string]CategoryBudget `json:"categoryBudgets"`
	SavingsGoals           []SavingsGoal             `json:"savingsGoals"`
}

// DefaultState returns the fresh state used on first start and as the
// fallback when a persisted snapshot cannot be read.
func DefaultState() State {
	return State{
		Settings:               DefaultSettings(),
		Items:                  []Item{},
		RecurringItems:         []RecurringItem{},
		AppliedRecurringMonths: []types.Month{},
		CategoryBudgets:        map[string]CategoryBudget{},
		SavingsGoals:           []SavingsGoal{},
	}
}

// CurrentMonthItems returns the items dated with the selected month.
func (s State) CurrentMonthItems() []Item {
	var items []Item
	for _, item := range s.Items {
		if item.Month.Equal(s.SelectedMonth) {
			items = append(items, item)
		}
	}
	return items
}

// AvailableMonths returns every month any item references, plus the
// selected month, sorted ascending.
func (s State) AvailableMonths() []types.Month {
	months := []types.Month{s.SelectedMonth}
	for _, item := range s.Items {
		known := false
		for _, m := range months {
			if m.Equal(item.Month) {
				known = true
				break
			}
		}
		if !known {
			months = append(months, item.Month)
		}
	}

	for i := 1; i < len(months); i++ {
		for j := i; j > 0 && months[j].Before(months[j-1]); j-- {
			months[j], months[j-1] = months[j-1], months[j]
		}
	}
	return months
}

// Clone returns a deep copy of the state. Mutations on the copy never
// reach the original, so snapshots can be read without holding the
// store lock.
func (s State) Clone() State {
	c := s
	c.Owners = append([]string(nil), s.Owners...)
	c.SavingRates = cloneDecimalMap(s.SavingRates)
	c.CommunalChargesDistribution = cloneDecimalMap(s.CommunalChargesDistribution)
	c.Items = append([]Item(nil), s.Items...)
	c.RecurringItems = append([]RecurringItem(nil), s.RecurringItems...)
	c.AppliedRecurringMonths = append([]types.Month(nil), s.AppliedRecurringMonths...)

	c.CategoryBudgets = make(map[string]CategoryBudget, len(s.CategoryBudgets))
	for name, budget := range s.CategoryBudgets {
		budget.PerPerson = cloneDecimalMap(budget.PerPerson)
		c.CategoryBudgets[name] = budget
	}

	c.SavingsGoals = make([]SavingsGoal, len(s.SavingsGoals))
	for i, goal := range s.SavingsGoals {
		goal.Allocations = append([]GoalAllocation(nil), goal.Allocations...)
		if goal.Owner != nil {
			owner := *goal.Owner
			goal.Owner = &owner
		}
		c.SavingsGoals[i] = goal
	}

	return c
}

func cloneDecimalMap(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	if m == nil {
		return nil
	}
	c := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
