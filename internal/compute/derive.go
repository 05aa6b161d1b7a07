// Package compute derives financial metrics from a state snapshot.
//
// Every function is a pure query: it reads the snapshot it is given and
// never mutates it, so results are deterministic for the same state.
// Unless noted otherwise, monetary results are rounded half away from
// zero to 2 decimal places and percentages to 1.
package compute

import (
	"fmt"

	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func sumCurrentMonth(s models.State, match func(models.Item) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.CurrentMonthItems() {
		if match(item) {
			sum = sum.Add(item.Amount)
		}
	}
	return sum
}

// RevenueByOwner sums the selected month's income attributed to the owner.
func RevenueByOwner(s models.State, owner string) decimal.Decimal {
	return sumCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeRevenu && i.OwnedBy(owner)
	})
}

// PersonalCharges sums the selected month's charges attributed to the owner.
func PersonalCharges(s models.State, owner string) decimal.Decimal {
	return sumCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeCharge && i.OwnedBy(owner)
	})
}

// TotalRevenue sums all income of the selected month, regardless of owner.
func TotalRevenue(s models.State) decimal.Decimal {
	return sumCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeRevenu
	})
}

// TotalCharges sums all charges of the selected month, regardless of owner.
func TotalCharges(s models.State) decimal.Decimal {
	return sumCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeCharge
	})
}

// TotalCommunalCharges sums the selected month's charges carrying the
// communal sentinel owner.
func TotalCommunalCharges(s models.State) decimal.Decimal {
	return sumCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeCharge && i.Communal()
	})
}

// ContributionPercentage is the owner's share of the household income.
// It is 0 when there is no income at all.
func ContributionPercentage(s models.State, owner string) decimal.Decimal {
	total := TotalRevenue(s)
	if total.IsZero() {
		return decimal.Zero
	}
	return RevenueByOwner(s, owner).Div(total).Mul(hundred).Round(1)
}

// CommunalChargesShare is the owner's part of the communal charges,
// split by the configured distribution. A missing distribution entry
// counts as 0.
func CommunalChargesShare(s models.State, owner string) decimal.Decimal {
	percentage := s.CommunalChargesDistribution[owner]
	return TotalCommunalCharges(s).Mul(percentage.Div(hundred)).Round(2)
}

// EffectiveCharges is everything the owner pays for the selected month:
// personal charges plus their communal share.
func EffectiveCharges(s models.State, owner string) decimal.Decimal {
	return PersonalCharges(s, owner).Add(CommunalChargesShare(s, owner)).Round(2)
}

// RemainingBeforeCommunal is the owner's income minus personal charges.
func RemainingBeforeCommunal(s models.State, owner string) decimal.Decimal {
	return RevenueByOwner(s, owner).Sub(PersonalCharges(s, owner)).Round(2)
}

// RemainingAfterCommunal is what is left once the communal share is
// paid as well. This is the owner's net income.
func RemainingAfterCommunal(s models.State, owner string) decimal.Decimal {
	return RemainingBeforeCommunal(s, owner).Sub(CommunalChargesShare(s, owner)).Round(2)
}

// NetIncome is an alias for RemainingAfterCommunal.
func NetIncome(s models.State, owner string) decimal.Decimal {
	return RemainingAfterCommunal(s, owner)
}

// SavingPotential applies the owner's saving rate to their net income.
// A missing rate counts as 0.
func SavingPotential(s models.State, owner string) decimal.Decimal {
	rate := s.SavingRates[owner]
	return RemainingAfterCommunal(s, owner).Mul(rate.Div(hundred)).Round(2)
}

// RemainingAfterSaving is the owner's net income minus their saving
// potential.
func RemainingAfterSaving(s models.State, owner string) decimal.Decimal {
	return RemainingAfterCommunal(s, owner).Sub(SavingPotential(s, owner)).Round(2)
}

// ChargesBreakdown groups the selected month's charges for display.
//
// In joint mode charges group by category alone; otherwise the owner is
// part of the key, "<category> (<owner>)". Sums are rounded after every
// addition, matching the behavior the stored amounts historically had.
func ChargesBreakdown(s models.State) map[string]decimal.Decimal {
	breakdown := map[string]decimal.Decimal{}
	for _, item := range s.CurrentMonthItems() {
		if item.Type != models.TypeCharge {
			continue
		}

		key := item.Category
		if s.HouseholdMode != models.ModeJoint {
			key = fmt.Sprintf("%s (%s)", item.Category, item.Owner)
		}
		breakdown[key] = breakdown[key].Add(item.Amount).Round(2)
	}
	return breakdown
}

// MonthlySummary is one month's aggregate over all items and owners.
type MonthlySummary struct {
	Month   types.Month     `json:"month"`
	Revenus decimal.Decimal `json:"revenus"`
	Charges decimal.Decimal `json:"charges"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyEvolution aggregates income, charges and net per month, for
// every month any item references plus the selected month, sorted
// ascending.
func MonthlyEvolution(s models.State) []MonthlySummary {
	months := s.AvailableMonths()
	evolution := make([]MonthlySummary, 0, len(months))

	for _, month := range months {
		revenus := decimal.Zero
		charges := decimal.Zero
		for _, item := range s.Items {
			if !item.Month.Equal(month) {
				continue
			}
			switch item.Type {
			case models.TypeRevenu:
				revenus = revenus.Add(item.Amount)
			case models.TypeCharge:
				charges = charges.Add(item.Amount)
			}
		}

		evolution = append(evolution, MonthlySummary{
			Month:   month,
			Revenus: revenus,
			Charges: charges,
			Net:     revenus.Sub(charges).Round(2),
		})
	}

	return evolution
}

// RevenueItems returns the selected month's income items.
func RevenueItems(s models.State) []models.Item {
	return filterCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeRevenu
	})
}

// CommunalChargeItems returns the selected month's communal charges.
func CommunalChargeItems(s models.State) []models.Item {
	return filterCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeCharge && i.Communal()
	})
}

// PersonalChargeItems returns the selected month's charges attributed
// to the owner.
func PersonalChargeItems(s models.State, owner string) []models.Item {
	return filterCurrentMonth(s, func(i models.Item) bool {
		return i.Type == models.TypeCharge && i.OwnedBy(owner)
	})
}

// CurrentMonthHasItems reports whether the selected month holds any item.
func CurrentMonthHasItems(s models.State) bool {
	return len(s.CurrentMonthItems()) > 0
}

func filterCurrentMonth(s models.State, match func(models.Item) bool) []models.Item {
	items := []models.Item{}
	for _, item := range s.CurrentMonthItems() {
		if match(item) {
			items = append(items, item)
		}
	}
	return items
}
