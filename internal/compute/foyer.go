package compute

import (
	"github.com/budget-foyer/backend/internal/models"
	"github.com/shopspring/decimal"
)

// FoyerSummary is the joint-mode view: everything pooled into one
// shared account, with one saving rate for the whole household.
type FoyerSummary struct {
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalCharges         decimal.Decimal `json:"totalCharges"`
	NetIncome            decimal.Decimal `json:"netIncome"`
	SavingPotential      decimal.Decimal `json:"savingPotential"`
	SavingPerPerson      decimal.Decimal `json:"savingPerPerson"`
	RemainingAfterSaving decimal.Decimal `json:"remainingAfterSaving"`
}

// Foyer computes the joint-mode aggregates for the selected month.
// The per-person saving divides by the owner count, floored at 1.
func Foyer(s models.State) FoyerSummary {
	revenue := TotalRevenue(s).Round(2)
	charges := TotalCharges(s).Round(2)
	net := revenue.Sub(charges).Round(2)
	potential := net.Mul(s.FoyerSavingRate.Div(hundred)).Round(2)

	owners := int64(len(s.Owners))
	if owners < 1 {
		owners = 1
	}

	return FoyerSummary{
		TotalRevenue:         revenue,
		TotalCharges:         charges,
		NetIncome:            net,
		SavingPotential:      potential,
		SavingPerPerson:      potential.Div(decimal.NewFromInt(owners)).Round(2),
		RemainingAfterSaving: net.Sub(potential).Round(2),
	}
}
