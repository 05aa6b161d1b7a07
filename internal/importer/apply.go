package importer

import (
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mode selects how imported items merge into the existing state.
type Mode string

const (
	// ModeMonth replaces only the selected month: its existing items
	// are dropped and the imported ones are force-dated to it. Other
	// months stay untouched.
	ModeMonth Mode = "month"
	// ModeFull discards the whole item collection and replaces it with
	// the imported one, each item keeping its own month.
	ModeFull Mode = "full"
)

// Apply merges the document into the state and returns the number of
// imported items.
//
// In full mode items keep their ids (fresh ones are assigned only when
// missing) and items missing a month default to the current one. Month
// mode always assigns fresh ids: the same export can be imported into
// several months, and ids stay unique across the whole collection.
// Saving rates and the communal distribution merge key by key, the
// remaining configuration sections replace wholesale when the document
// carries them. The selected month is never changed by an import.
func Apply(state *models.State, doc Document, mode Mode) int {
	items := make([]models.Item, len(doc.Items))
	for i, item := range doc.Items {
		if mode == ModeMonth {
			item.ID = uuid.New()
			item.Month = state.SelectedMonth
		} else {
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			if item.Month.IsZero() {
				item.Month = types.CurrentMonth()
			}
		}
		items[i] = item
	}

	if mode == ModeFull {
		state.Items = items
	} else {
		kept := []models.Item{}
		for _, item := range state.Items {
			if !item.Month.Equal(state.SelectedMonth) {
				kept = append(kept, item)
			}
		}
		state.Items = append(kept, items...)
	}

	if doc.SavingRates != nil {
		if state.SavingRates == nil {
			state.SavingRates = map[string]decimal.Decimal{}
		}
		for owner, rate := range doc.SavingRates {
			state.SavingRates[owner] = rate
		}
	}
	if doc.CommunalChargesDistribution != nil {
		if state.CommunalChargesDistribution == nil {
			state.CommunalChargesDistribution = map[string]decimal.Decimal{}
		}
		for owner, share := range doc.CommunalChargesDistribution {
			state.CommunalChargesDistribution[owner] = share
		}
	}

	if doc.Owners != nil {
		state.Owners = append([]string(nil), doc.Owners...)
	}
	if doc.HouseholdMode != nil {
		state.HouseholdMode = *doc.HouseholdMode
	}
	if doc.FoyerSavingRate != nil {
		state.FoyerSavingRate = *doc.FoyerSavingRate
	}
	if doc.RecurringItems != nil {
		recurring := make([]models.RecurringItem, len(doc.RecurringItems))
		for i, r := range doc.RecurringItems {
			if r.ID == uuid.Nil {
				r.ID = uuid.New()
			}
			recurring[i] = r
		}
		state.RecurringItems = recurring
	}
	if doc.AppliedRecurringMonths != nil {
		state.AppliedRecurringMonths = append([]types.Month(nil), doc.AppliedRecurringMonths...)
	}
	if doc.CategoryBudgets != nil {
		state.CategoryBudgets = doc.CategoryBudgets
	}
	if doc.SavingsGoals != nil {
		goals := make([]models.SavingsGoal, len(doc.SavingsGoals))
		for i, goal := range doc.SavingsGoals {
			if goal.ID == uuid.Nil {
				goal.ID = uuid.New()
			}
			if goal.Allocations == nil {
				goal.Allocations = []models.GoalAllocation{}
			}
			goals[i] = goal
		}
		state.SavingsGoals = goals
	}

	return len(items)
}
