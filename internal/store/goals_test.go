package store_test

import (
	"testing"

	"github.com/budget-foyer/backend/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGoal(t *testing.T) {
	s, _ := newTestStore()

	owner := "Alice"
	goal := s.AddGoal(store.GoalInput{Name: "Vacances", TargetAmount: decimal.NewFromInt(1000), Owner: &owner})

	assert.NotEqual(t, uuid.Nil, goal.ID)
	assert.True(t, goal.CreatedAt.Equal(march), "goals are dated with the selected month")
	assert.NotNil(t, goal.Allocations)
	require.NotNil(t, goal.Owner)
	assert.Equal(t, "Alice", *goal.Owner)
}

func TestEditGoal(t *testing.T) {
	s, _ := newTestStore()
	owner := "Alice"
	goal := s.AddGoal(store.GoalInput{Name: "Vacances", TargetAmount: decimal.NewFromInt(1000), Owner: &owner})

	name := "Grandes vacances"
	target := decimal.NewFromInt(1500)
	s.EditGoal(goal.ID, store.GoalPatch{Name: &name, TargetAmount: &target})

	got := s.Snapshot().SavingsGoals[0]
	assert.Equal(t, name, got.Name)
	assert.True(t, got.TargetAmount.Equal(target))
	require.NotNil(t, got.Owner, "an untouched owner stays")

	// Setting Joint clears the owner.
	joint := true
	s.EditGoal(goal.ID, store.GoalPatch{Joint: &joint})
	assert.Nil(t, s.Snapshot().SavingsGoals[0].Owner)
}

func TestDeleteGoal(t *testing.T) {
	s, _ := newTestStore()
	goal := s.AddGoal(store.GoalInput{Name: "Vacances", TargetAmount: decimal.NewFromInt(1000)})

	s.DeleteGoal(goal.ID)
	assert.Empty(t, s.Snapshot().SavingsGoals)

	// Unknown ids are no-ops.
	s.DeleteGoal(uuid.New())
}

func TestAllocateToGoal(t *testing.T) {
	s, _ := newTestStore()
	goal := s.AddGoal(store.GoalInput{Name: "Maison", TargetAmount: decimal.NewFromInt(5000)})

	s.AllocateToGoal(goal.ID, march, decimal.NewFromInt(200), "Alice")
	s.AllocateToGoal(goal.ID, march, decimal.NewFromInt(100), "Bob")
	s.AllocateToGoal(goal.ID, march, decimal.NewFromInt(250), "Alice")

	got := s.Snapshot().SavingsGoals[0]
	require.Len(t, got.Allocations, 2)
	assert.True(t, got.TotalSaved().Equal(decimal.NewFromInt(350)))
}
