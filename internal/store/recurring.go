package store

import (
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RecurringInput carries the caller-supplied fields of a new template.
type RecurringInput struct {
	Type     models.ItemType `json:"type"`
	Owner    string          `json:"owner"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Active   bool            `json:"isActive"`
}

// RecurringPatch is a partial update. Nil fields stay untouched.
type RecurringPatch struct {
	Type     *models.ItemType `json:"type"`
	Owner    *string          `json:"owner"`
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Active   *bool            `json:"isActive"`
}

// AddRecurringItem creates a new monthly template and returns it.
func (s *Store) AddRecurringItem(input RecurringInput) models.RecurringItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	recurring := models.RecurringItem{
		ID:       uuid.New(),
		Type:     input.Type,
		Owner:    input.Owner,
		Category: input.Category,
		Amount:   input.Amount,
		Active:   input.Active,
	}
	s.state.RecurringItems = append(s.state.RecurringItems, recurring)
	s.scheduleSave()

	return recurring
}

// EditRecurringItem applies the patch to the template with the given
// id. An unknown id is a no-op.
func (s *Store) EditRecurringItem(id uuid.UUID, patch RecurringPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.RecurringItems {
		if s.state.RecurringItems[i].ID != id {
			continue
		}

		recurring := &s.state.RecurringItems[i]
		if patch.Type != nil {
			recurring.Type = *patch.Type
		}
		if patch.Owner != nil {
			recurring.Owner = *patch.Owner
		}
		if patch.Category != nil {
			recurring.Category = *patch.Category
		}
		if patch.Amount != nil {
			recurring.Amount = *patch.Amount
		}
		if patch.Active != nil {
			recurring.Active = *patch.Active
		}

		s.scheduleSave()
		return
	}
}

// DeleteRecurringItem removes the template with the given id. An
// unknown id is a no-op.
func (s *Store) DeleteRecurringItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.RecurringItems {
		if s.state.RecurringItems[i].ID == id {
			s.state.RecurringItems = append(s.state.RecurringItems[:i], s.state.RecurringItems[i+1:]...)
			s.scheduleSave()
			return
		}
	}
}

// ToggleRecurringItem flips the template's active flag. An unknown id
// is a no-op.
func (s *Store) ToggleRecurringItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.RecurringItems {
		if s.state.RecurringItems[i].ID == id {
			s.state.RecurringItems[i].Active = !s.state.RecurringItems[i].Active
			s.scheduleSave()
			return
		}
	}
}

// ApplyRecurringItems materializes every active template into an item
// dated with the month and returns how many items were created.
//
// Applying is deliberately not idempotent: a second call for the same
// month creates the items again. The applied-months marker only tells
// the caller that the month was applied before, it does not block.
func (s *Store) ApplyRecurringItems(month types.Month) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, recurring := range s.state.RecurringItems {
		if !recurring.Active {
			continue
		}

		item := recurring.Materialize(month)
		item.ID = uuid.New()
		s.state.Items = append(s.state.Items, item)
		count++
	}
	if count == 0 {
		return 0
	}

	if !slices.ContainsFunc(s.state.AppliedRecurringMonths, month.Equal) {
		s.state.AppliedRecurringMonths = append(s.state.AppliedRecurringMonths, month)
	}

	s.scheduleSave()
	return count
}

// HasRecurringBeenApplied reports whether the month is in the
// applied-months marker list.
func (s *Store) HasRecurringBeenApplied(month types.Month) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(s.state.AppliedRecurringMonths, month.Equal)
}
