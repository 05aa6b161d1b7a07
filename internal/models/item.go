// Package models defines the records the budget backend operates on.
//
// All monetary values are decimal.Decimal, all record identifiers are
// UUIDs generated by the store, never by callers.
package models

import (
	"strings"

	"github.com/budget-foyer/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType is the direction of a line item.
type ItemType string

const (
	TypeRevenu ItemType = "Revenu"
	TypeCharge ItemType = "Charge"
)

// CommunalOwner is the sentinel owner marking a charge as shared by the
// whole household. Comparisons against it are case-insensitive.
const CommunalOwner = "Commun"

// Item is a single transaction record, attributed to one month.
type Item struct {
	ID       uuid.UUID       `json:"id"`
	Month    types.Month     `json:"month"`
	Type     ItemType        `json:"type"`
	Owner    string          `json:"owner"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// OwnedBy reports whether the item belongs to the given owner.
// Owner names compare case-insensitively throughout.
func (i Item) OwnedBy(owner string) bool {
	return strings.EqualFold(i.Owner, owner)
}

// Communal reports whether the item is a shared household charge.
func (i Item) Communal() bool {
	return strings.EqualFold(i.Owner, CommunalOwner)
}

// RecurringItem is a monthly-repeating pattern. It has the shape of an
// Item without a month and materializes into one dated Item per
// application.
type RecurringItem struct {
	ID       uuid.UUID       `json:"id"`
	Type     ItemType        `json:"type"`
	Owner    string          `json:"owner"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Active   bool            `json:"isActive"`
}

// Materialize returns the Item this template produces for a month.
// The caller assigns the id.
func (r RecurringItem) Materialize(month types.Month) Item {
	return Item{
		Month:    month,
		Type:     r.Type,
		Owner:    r.Owner,
		Category: r.Category,
		Amount:   r.Amount,
	}
}
