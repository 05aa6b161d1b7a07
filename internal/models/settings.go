package models

import (
	"github.com/budget-foyer/backend/internal/types"
	"github.com/shopspring/decimal"
)

// HouseholdMode selects how income and charges are attributed.
type HouseholdMode string

const (
	// ModeSingle is a one-owner household, nothing is split.
	ModeSingle HouseholdMode = "single"
	// ModeSeparate keeps income and charges per owner, with communal
	// charges split by the configured distribution.
	ModeSeparate HouseholdMode = "separate"
	// ModeJoint pools all income and charges into one shared view.
	ModeJoint HouseholdMode = "joint"
)

// Settings is the household configuration.
//
// SavingRates and CommunalChargesDistribution are keyed by owner name
// and hold percentages. Distribution values are intentionally not
// validated to sum to 100.
type Settings struct {
	Owners                      []string                   `json:"owners"`
	HouseholdMode               HouseholdMode              `json:"householdMode"`
	SavingRates                 map[string]decimal.Decimal `json:"savingRates"`
	CommunalChargesDistribution map[string]decimal.Decimal `json:"communalChargesDistribution"`
	FoyerSavingRate             decimal.Decimal            `json:"foyerSavingRate"`
	SelectedMonth               types.Month                `json:"selectedMonth"`
	Theme                       string                     `json:"theme"`
}

// CategoryBudget is a spending limit for one category. A limit of zero
// or an absent entry means no limit. PerPerson limits override the
// global one for the named owner.
type CategoryBudget struct {
	Global    decimal.Decimal            `json:"global"`
	PerPerson map[string]decimal.Decimal `json:"perPerson,omitempty"`
}

// DefaultSavingRate is assigned to owners without a configured rate.
var DefaultSavingRate = decimal.NewFromInt(30)

// DefaultSettings returns the configuration a fresh installation
// starts with.
func DefaultSettings() Settings {
	half := decimal.NewFromInt(50)

	return Settings{
		Owners:        []string{"Personne 1", "Personne 2"},
		HouseholdMode: ModeSeparate,
		SavingRates: map[string]decimal.Decimal{
			"Personne 1": DefaultSavingRate,
			"Personne 2": DefaultSavingRate,
		},
		CommunalChargesDistribution: map[string]decimal.Decimal{
			"Personne 1": half,
			"Personne 2": half,
		},
		FoyerSavingRate: DefaultSavingRate,
		SelectedMonth:   types.CurrentMonth(),
		Theme:           "light",
	}
}
