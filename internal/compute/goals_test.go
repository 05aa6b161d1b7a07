package compute_test

import (
	"testing"
	"time"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRef(s string) *string {
	return &s
}

func TestProgress(t *testing.T) {
	goal := models.SavingsGoal{
		TargetAmount: decimal.NewFromInt(1000),
		Allocations: []models.GoalAllocation{
			{Month: march, Amount: decimal.NewFromInt(200), Owner: stringRef("Alice")},
			{Month: march, Amount: decimal.NewFromInt(100), Owner: stringRef("Bob")},
		},
	}

	progress := compute.Progress(goal)
	assertDecimal(t, "300", progress.TotalSaved)
	assertDecimal(t, "700", progress.Remaining)
	assertDecimal(t, "30", progress.Percentage)
}

func TestProgressOverfundedGoal(t *testing.T) {
	goal := models.SavingsGoal{
		TargetAmount: decimal.NewFromInt(500),
		Allocations: []models.GoalAllocation{
			{Month: march, Amount: decimal.NewFromInt(800)},
		},
	}

	progress := compute.Progress(goal)
	assertDecimal(t, "0", progress.Remaining)
	assertDecimal(t, "100", progress.Percentage)
}

func TestProgressZeroTarget(t *testing.T) {
	goal := models.SavingsGoal{
		Allocations: []models.GoalAllocation{
			{Month: march, Amount: decimal.NewFromInt(100)},
		},
	}

	progress := compute.Progress(goal)
	assertDecimal(t, "0", progress.Percentage)
	assertDecimal(t, "0", progress.Remaining)
}

func TestActiveGoals(t *testing.T) {
	s := models.DefaultState()
	s.SavingsGoals = []models.SavingsGoal{
		{
			ID:           uuid.New(),
			Name:         "Vacances",
			TargetAmount: decimal.NewFromInt(1000),
			Allocations:  []models.GoalAllocation{{Month: march, Amount: decimal.NewFromInt(400)}},
		},
		{
			ID:           uuid.New(),
			Name:         "Vélo",
			TargetAmount: decimal.NewFromInt(300),
			Allocations:  []models.GoalAllocation{{Month: march, Amount: decimal.NewFromInt(300)}},
		},
	}

	active := compute.ActiveGoals(s)
	require.Len(t, active, 1)
	assert.Equal(t, "Vacances", active[0].Name)
}

func TestTotalAllocatedForMonth(t *testing.T) {
	april := types.NewMonth(2024, time.April)

	s := models.DefaultState()
	s.SavingsGoals = []models.SavingsGoal{
		{
			// Joint goal: only allocations tagged with the owner count.
			ID:           uuid.New(),
			TargetAmount: decimal.NewFromInt(1000),
			Allocations: []models.GoalAllocation{
				{Month: march, Amount: decimal.NewFromInt(200), Owner: stringRef("Alice")},
				{Month: march, Amount: decimal.NewFromInt(100), Owner: stringRef("Bob")},
				{Month: april, Amount: decimal.NewFromInt(50), Owner: stringRef("Alice")},
			},
		},
		{
			// Alice's personal goal counts in full for her.
			ID:           uuid.New(),
			TargetAmount: decimal.NewFromInt(500),
			Owner:        stringRef("Alice"),
			Allocations: []models.GoalAllocation{
				{Month: march, Amount: decimal.NewFromInt(80)},
			},
		},
		{
			// Bob's personal goal contributes nothing to Alice.
			ID:           uuid.New(),
			TargetAmount: decimal.NewFromInt(500),
			Owner:        stringRef("Bob"),
			Allocations: []models.GoalAllocation{
				{Month: march, Amount: decimal.NewFromInt(60)},
			},
		},
	}

	assertDecimal(t, "280", compute.TotalAllocatedForMonth(s, march, "Alice"))
	assertDecimal(t, "160", compute.TotalAllocatedForMonth(s, march, "Bob"))
	assertDecimal(t, "50", compute.TotalAllocatedForMonth(s, april, "Alice"))

	// An empty owner counts everything.
	assertDecimal(t, "440", compute.TotalAllocatedForMonth(s, march, ""))
}

func TestGoalByID(t *testing.T) {
	s := models.DefaultState()
	id := uuid.New()
	s.SavingsGoals = []models.SavingsGoal{{ID: id, Name: "Vacances"}}

	goal, ok := compute.GoalByID(s, id)
	require.True(t, ok)
	assert.Equal(t, "Vacances", goal.Name)

	_, ok = compute.GoalByID(s, uuid.New())
	assert.False(t, ok)
}
