package store

import (
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalInput carries the caller-supplied fields of a new savings goal.
// A nil owner creates a joint goal.
type GoalInput struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Owner        *string         `json:"owner"`
}

// GoalPatch is a partial update. Nil fields stay untouched; setting
// Joint makes the goal a joint one and clears its owner.
type GoalPatch struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Owner        *string          `json:"owner"`
	Joint        *bool            `json:"joint"`
}

// AddGoal creates a new savings goal, dated with the selected month,
// and returns it.
func (s *Store) AddGoal(input GoalInput) models.SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := models.SavingsGoal{
		ID:           uuid.New(),
		Name:         input.Name,
		TargetAmount: input.TargetAmount,
		CreatedAt:    s.state.SelectedMonth,
		Allocations:  []models.GoalAllocation{},
	}
	if input.Owner != nil {
		owner := *input.Owner
		goal.Owner = &owner
	}

	s.state.SavingsGoals = append(s.state.SavingsGoals, goal)
	s.scheduleSave()

	return goal
}

// EditGoal applies the patch to the goal with the given id. An unknown
// id is a no-op.
func (s *Store) EditGoal(id uuid.UUID, patch GoalPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.SavingsGoals {
		if s.state.SavingsGoals[i].ID != id {
			continue
		}

		goal := &s.state.SavingsGoals[i]
		if patch.Name != nil {
			goal.Name = *patch.Name
		}
		if patch.TargetAmount != nil {
			goal.TargetAmount = *patch.TargetAmount
		}
		if patch.Joint != nil && *patch.Joint {
			goal.Owner = nil
		} else if patch.Owner != nil {
			owner := *patch.Owner
			goal.Owner = &owner
		}

		s.scheduleSave()
		return
	}
}

// DeleteGoal removes the goal with the given id. An unknown id is a
// no-op.
func (s *Store) DeleteGoal(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.SavingsGoals {
		if s.state.SavingsGoals[i].ID == id {
			s.state.SavingsGoals = append(s.state.SavingsGoals[:i], s.state.SavingsGoals[i+1:]...)
			s.scheduleSave()
			return
		}
	}
}

// AllocateToGoal upserts the month's contribution to the goal. For
// joint goals the contribution is tagged with the contributing owner
// and keyed by (month, owner); personal goals key by month alone. An
// unknown goal id is a no-op.
func (s *Store) AllocateToGoal(id uuid.UUID, month types.Month, amount decimal.Decimal, owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.SavingsGoals {
		if s.state.SavingsGoals[i].ID == id {
			s.state.SavingsGoals[i].Allocate(month, amount, owner)
			s.scheduleSave()
			return
		}
	}
}
