package store

import (
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemInput carries the caller-supplied fields of a new item. The id
// and the month are assigned by the store.
type ItemInput struct {
	Type     models.ItemType `json:"type"`
	Owner    string          `json:"owner"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ItemPatch is a partial update. Nil fields stay untouched.
type ItemPatch struct {
	Month    *types.Month     `json:"month"`
	Type     *models.ItemType `json:"type"`
	Owner    *string          `json:"owner"`
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
}

// AddItem appends a new item dated with the selected month and returns it.
func (s *Store) AddItem(input ItemInput) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.Item{
		ID:       uuid.New(),
		Month:    s.state.SelectedMonth,
		Type:     input.Type,
		Owner:    input.Owner,
		Category: input.Category,
		Amount:   input.Amount,
	}
	s.state.Items = append(s.state.Items, item)
	s.scheduleSave()

	return item
}

// Item returns the item with the given id.
func (s *Store) Item(id uuid.UUID) (models.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.state.Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// EditItem applies the patch to the item with the given id. An unknown
// id is a no-op.
func (s *Store) EditItem(id uuid.UUID, patch ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID != id {
			continue
		}

		item := &s.state.Items[i]
		if patch.Month != nil {
			item.Month = *patch.Month
		}
		if patch.Type != nil {
			item.Type = *patch.Type
		}
		if patch.Owner != nil {
			item.Owner = *patch.Owner
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.Amount != nil {
			item.Amount = *patch.Amount
		}

		s.scheduleSave()
		return
	}
}

// DeleteItem removes the item with the given id. An unknown id is a
// no-op.
func (s *Store) DeleteItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Items {
		if s.state.Items[i].ID == id {
			s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			s.scheduleSave()
			return
		}
	}
}

// DuplicateMonth copies every item of the source month into the target
// month, with fresh ids. It reports whether anything was copied.
func (s *Store) DuplicateMonth(source, target types.Month) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var copies []models.Item
	for _, item := range s.state.Items {
		if !item.Month.Equal(source) {
			continue
		}
		item.ID = uuid.New()
		item.Month = target
		copies = append(copies, item)
	}
	if len(copies) == 0 {
		return false
	}

	s.state.Items = append(s.state.Items, copies...)
	s.scheduleSave()
	return true
}
