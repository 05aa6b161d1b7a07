package models

import (
	"strings"

	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal is a long-term savings target.
//
// Owner nil marks a joint goal every owner contributes to; otherwise
// the goal belongs to the named owner alone.
type SavingsGoal struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	TargetAmount decimal.Decimal  `json:"targetAmount"`
	Owner        *string          `json:"owner"`
	CreatedAt    types.Month      `json:"createdAt"`
	Allocations  []GoalAllocation `json:"allocations"`
}

// GoalAllocation is a dated contribution recorded against a goal.
// For joint goals the contributing owner is tagged on the allocation.
type GoalAllocation struct {
	Month  types.Month     `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Owner  *string         `json:"owner,omitempty"`
}

// Joint reports whether the goal is shared by all owners.
func (g SavingsGoal) Joint() bool {
	return g.Owner == nil
}

// OwnedBy reports whether the goal belongs to the given owner.
// Joint goals belong to nobody in particular.
func (g SavingsGoal) OwnedBy(owner string) bool {
	return g.Owner != nil && strings.EqualFold(*g.Owner, owner)
}

// TotalSaved sums all allocations recorded against the goal.
func (g SavingsGoal) TotalSaved() decimal.Decimal {
	sum := decimal.Zero
	for _, a := range g.Allocations {
		sum = sum.Add(a.Amount)
	}
	return sum
}

// allocationIndex returns the position of the allocation matching the
// upsert key, or -1. Personal goals key by month alone, joint goals by
// (month, owner).
func (g SavingsGoal) allocationIndex(month types.Month, owner string) int {
	for i, a := range g.Allocations {
		if !a.Month.Equal(month) {
			continue
		}
		if !g.Joint() {
			return i
		}
		if a.Owner != nil && strings.EqualFold(*a.Owner, owner) {
			return i
		}
	}
	return -1
}

// Allocate upserts a contribution for the month (and owner, for joint
// goals). An existing record for the key has its amount overwritten.
func (g *SavingsGoal) Allocate(month types.Month, amount decimal.Decimal, owner string) {
	if i := g.allocationIndex(month, owner); i >= 0 {
		g.Allocations[i].Amount = amount
		return
	}

	alloc := GoalAllocation{Month: month, Amount: amount}
	if g.Joint() {
		alloc.Owner = &owner
	}
	g.Allocations = append(g.Allocations, alloc)
}
