// Package importer implements the versioned export envelope and the
// import semantics for it.
//
// Three schema versions exist. v1 is the legacy payload carrying only
// items, without a version field. v2 added the owner configuration,
// v3 the household mode, recurring templates, category budgets and
// savings goals. Loading an older version runs the pure migrations
// v1→v2→v3, composed left to right.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Version is the schema version written by Export.
const Version = 3

var (
	// ErrInvalidJSON is returned for content that is not parseable JSON.
	ErrInvalidJSON = errors.New("invalid JSON document")
	// ErrUnknownFormat is returned for JSON that is no known export version.
	ErrUnknownFormat = errors.New("unrecognized export format")
)

// documentV1 is the legacy export: a bare item list, no version field.
type documentV1 struct {
	Items []models.Item `json:"items"`
}

// documentV2 added the owner configuration to the envelope.
type documentV2 struct {
	Version                     int                        `json:"version"`
	ExportDate                  string                     `json:"exportDate,omitempty"`
	Items                       []models.Item              `json:"items"`
	SavingRates                 map[string]decimal.Decimal `json:"savingRates,omitempty"`
	CommunalChargesDistribution map[string]decimal.Decimal `json:"communalChargesDistribution,omitempty"`
	Owners                      []string                   `json:"owners,omitempty"`
	SelectedMonth               *types.Month               `json:"selectedMonth,omitempty"`
}

// Document is the current (v3) export envelope.
type Document struct {
	Version                     int                              `json:"version"`
	ExportDate                  string                           `json:"exportDate,omitempty"`
	Items                       []models.Item                    `json:"items"`
	SavingRates                 map[string]decimal.Decimal       `json:"savingRates,omitempty"`
	CommunalChargesDistribution map[string]decimal.Decimal       `json:"communalChargesDistribution,omitempty"`
	Owners                      []string                         `json:"owners,omitempty"`
	SelectedMonth               *types.Month                     `json:"selectedMonth,omitempty"`
	HouseholdMode               *models.HouseholdMode            `json:"householdMode,omitempty"`
	FoyerSavingRate             *decimal.Decimal                 `json:"foyerSavingRate,omitempty"`
	RecurringItems              []models.RecurringItem           `json:"recurringItems,omitempty"`
	AppliedRecurringMonths      []types.Month                    `json:"appliedRecurringMonths,omitempty"`
	CategoryBudgets             map[string]models.CategoryBudget `json:"categoryBudgets,omitempty"`
	SavingsGoals                []models.SavingsGoal             `json:"savingsGoals,omitempty"`
}

func migrateV1(doc documentV1) documentV2 {
	return documentV2{
		Version: 2,
		Items:   doc.Items,
	}
}

func migrateV2(doc documentV2) Document {
	return Document{
		Version:                     Version,
		ExportDate:                  doc.ExportDate,
		Items:                       doc.Items,
		SavingRates:                 doc.SavingRates,
		CommunalChargesDistribution: doc.CommunalChargesDistribution,
		Owners:                      doc.Owners,
		SelectedMonth:               doc.SelectedMonth,
	}
}

// Parse reads an exported document of any known version and migrates
// it to the current one. It never panics: malformed JSON yields
// ErrInvalidJSON, valid JSON of no known shape ErrUnknownFormat.
func Parse(content []byte) (Document, error) {
	var probe struct {
		Version int             `json:"version"`
		Items   json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(content, &probe); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	switch probe.Version {
	case 3:
		var doc Document
		if err := json.Unmarshal(content, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return doc, nil

	case 2:
		var doc documentV2
		if err := json.Unmarshal(content, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return migrateV2(doc), nil

	case 0:
		// No version field: accept the legacy payload if it at least
		// carries items.
		if probe.Items == nil {
			return Document{}, ErrUnknownFormat
		}
		var doc documentV1
		if err := json.Unmarshal(content, &doc); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return migrateV2(migrateV1(doc)), nil

	default:
		return Document{}, ErrUnknownFormat
	}
}
