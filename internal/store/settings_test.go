package store_test

import (
	"testing"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "got %s, want %s", got, want)
}

func TestSetOwnersRenamesEverywhere(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Personne 1", "Personne 2"})

	s.AddItem(store.ItemInput{Type: models.TypeRevenu, Owner: "Personne 1", Category: "Salaire", Amount: decimal.NewFromInt(3000)})
	s.AddItem(store.ItemInput{Type: models.TypeCharge, Owner: "Commun", Category: "Loyer", Amount: decimal.NewFromInt(800)})
	s.AddRecurringItem(store.RecurringInput{Type: models.TypeCharge, Owner: "Personne 2", Category: "Abonnement", Amount: decimal.NewFromInt(15), Active: true})

	owner := "Personne 1"
	goal := s.AddGoal(store.GoalInput{Name: "Vacances", TargetAmount: decimal.NewFromInt(1000), Owner: &owner})
	joint := s.AddGoal(store.GoalInput{Name: "Maison", TargetAmount: decimal.NewFromInt(5000)})
	s.AllocateToGoal(joint.ID, march, decimal.NewFromInt(100), "Personne 2")

	s.SetCategoryBudget("Courses", models.CategoryBudget{
		Global:    decimal.NewFromInt(400),
		PerPerson: map[string]decimal.Decimal{"Personne 1": decimal.NewFromInt(250)},
	})
	s.SetSavingRate("Personne 1", decimal.NewFromInt(40))
	s.SetCommunalChargesDistribution(map[string]decimal.Decimal{
		"Personne 1": decimal.NewFromInt(60),
		"Personne 2": decimal.NewFromInt(40),
	})

	s.SetOwners([]string{"Alice", "Bob"})

	state := s.Snapshot()
	assert.Equal(t, []string{"Alice", "Bob"}, state.Owners)

	assert.Equal(t, "Alice", state.Items[0].Owner)
	assert.Equal(t, "Commun", state.Items[1].Owner, "the communal sentinel is not an owner")
	assert.Equal(t, "Bob", state.RecurringItems[0].Owner)

	for _, g := range state.SavingsGoals {
		switch g.ID {
		case goal.ID:
			require.NotNil(t, g.Owner)
			assert.Equal(t, "Alice", *g.Owner)
		case joint.ID:
			require.Len(t, g.Allocations, 1)
			require.NotNil(t, g.Allocations[0].Owner)
			assert.Equal(t, "Bob", *g.Allocations[0].Owner)
		}
	}

	perPerson := state.CategoryBudgets["Courses"].PerPerson
	_, stale := perPerson["Personne 1"]
	assert.False(t, stale)
	decimalEqual(t, "250", perPerson["Alice"])

	decimalEqual(t, "40", state.SavingRates["Alice"])
	decimalEqual(t, "30", state.SavingRates["Bob"])

	// A 2-owner household staying at 2 owners keeps its split.
	decimalEqual(t, "60", state.CommunalChargesDistribution["Alice"])
	decimalEqual(t, "40", state.CommunalChargesDistribution["Bob"])
}

func TestSetOwnersSwapDoesNotCascade(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Alice", "Bob"})

	s.AddItem(store.ItemInput{Type: models.TypeRevenu, Owner: "Alice", Category: "Salaire", Amount: decimal.NewFromInt(3000)})
	s.AddItem(store.ItemInput{Type: models.TypeRevenu, Owner: "Bob", Category: "Salaire", Amount: decimal.NewFromInt(2000)})
	s.SetSavingRate("Alice", decimal.NewFromInt(40))
	s.SetSavingRate("Bob", decimal.NewFromInt(20))

	// Both names change position at once; each record must be rewritten
	// exactly once, not renamed twice in a row.
	s.SetOwners([]string{"Bob", "Alice"})

	state := s.Snapshot()
	assert.Equal(t, "Bob", state.Items[0].Owner)
	assert.Equal(t, "Alice", state.Items[1].Owner)
	decimalEqual(t, "3000", state.Items[0].Amount)
	decimalEqual(t, "2000", state.Items[1].Amount)

	// Rates pair by position, so they follow the swap.
	decimalEqual(t, "40", state.SavingRates["Bob"])
	decimalEqual(t, "20", state.SavingRates["Alice"])
}

func TestSetOwnersRotation(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Alice", "Bob", "Chloé"})
	s.AddItem(store.ItemInput{Type: models.TypeCharge, Owner: "Alice", Category: "Transport", Amount: decimal.NewFromInt(100)})
	s.AddItem(store.ItemInput{Type: models.TypeCharge, Owner: "Bob", Category: "Transport", Amount: decimal.NewFromInt(200)})
	s.AddItem(store.ItemInput{Type: models.TypeCharge, Owner: "Chloé", Category: "Transport", Amount: decimal.NewFromInt(300)})

	s.SetOwners([]string{"Chloé", "Alice", "Bob"})

	state := s.Snapshot()
	assert.Equal(t, "Chloé", state.Items[0].Owner)
	assert.Equal(t, "Alice", state.Items[1].Owner)
	assert.Equal(t, "Bob", state.Items[2].Owner)
}

func TestSetOwnersRenamesPerPersonBudgetsCaseInsensitively(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Alice", "Bob"})
	s.SetCategoryBudget("Courses", models.CategoryBudget{
		Global: decimal.NewFromInt(400),
		PerPerson: map[string]decimal.Decimal{
			// Hand-typed with the wrong case, must still follow the rename.
			"alice": decimal.NewFromInt(250),
			"Bob":   decimal.NewFromInt(100),
		},
	})

	s.SetOwners([]string{"Bob", "Alice"})

	perPerson := s.Snapshot().CategoryBudgets["Courses"].PerPerson
	require.Len(t, perPerson, 2)
	assert.NotContains(t, perPerson, "alice")
	decimalEqual(t, "250", perPerson["Bob"])
	decimalEqual(t, "100", perPerson["Alice"])
}

func TestSetOwnersDistributionTransitions(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Alice", "Bob"})
	s.SetCommunalChargesDistribution(map[string]decimal.Decimal{
		"Alice": decimal.NewFromInt(60),
		"Bob":   decimal.NewFromInt(40),
	})

	s.SetOwners([]string{"Alice"})
	decimalEqual(t, "100", s.Snapshot().CommunalChargesDistribution["Alice"])

	s.SetOwners([]string{"Alice", "Bob", "Chloé"})
	state := s.Snapshot()
	even := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	for _, owner := range state.Owners {
		assert.True(t, state.CommunalChargesDistribution[owner].Equal(even))
	}
}

func TestSetHouseholdMode(t *testing.T) {
	s, _ := newTestStore()
	s.SetOwners([]string{"Alice", "Bob"})

	s.SetHouseholdMode(models.ModeSingle)
	state := s.Snapshot()
	assert.Equal(t, models.ModeSingle, state.HouseholdMode)
	assert.Equal(t, []string{"Alice"}, state.Owners)
	decimalEqual(t, "100", state.CommunalChargesDistribution["Alice"])

	// Going back to a shared mode synthesizes the missing second owner.
	s.SetHouseholdMode(models.ModeJoint)
	state = s.Snapshot()
	assert.Equal(t, models.ModeJoint, state.HouseholdMode)
	assert.Equal(t, []string{"Alice", "Personne 2"}, state.Owners)
	decimalEqual(t, "30", state.SavingRates["Personne 2"])
}

func TestSetSelectedMonthAndTheme(t *testing.T) {
	s, _ := newTestStore()

	s.SetSelectedMonth(march.AddDate(0, 2))
	s.SetTheme("dark")

	state := s.Snapshot()
	assert.Equal(t, "2024-05", state.SelectedMonth.String())
	assert.Equal(t, "dark", state.Theme)
}

func TestDeleteCategoryBudget(t *testing.T) {
	s, persister := newTestStore()
	s.SetCategoryBudget("Courses", models.CategoryBudget{Global: decimal.NewFromInt(400)})
	s.Flush()
	writes := persister.count()

	s.DeleteCategoryBudget("Courses")
	assert.Empty(t, s.Snapshot().CategoryBudgets)

	s.DeleteCategoryBudget("Courses")
	s.Flush()
	assert.Equal(t, writes+1, persister.count(), "deleting an unknown category schedules no write")
}
