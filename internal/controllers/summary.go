package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) registerSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", co.GetSummary)
	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", co.GetCategories)
}

// OwnerSummary is the full derivation chain for one owner in the
// selected month.
type OwnerSummary struct {
	Owner                   string          `json:"owner"`
	Revenue                 decimal.Decimal `json:"revenue"`
	ContributionPercentage  decimal.Decimal `json:"contributionPercentage"`
	PersonalCharges         decimal.Decimal `json:"personalCharges"`
	CommunalChargesShare    decimal.Decimal `json:"communalChargesShare"`
	EffectiveCharges        decimal.Decimal `json:"effectiveCharges"`
	RemainingBeforeCommunal decimal.Decimal `json:"remainingBeforeCommunal"`
	NetIncome               decimal.Decimal `json:"netIncome"`
	SavingPotential         decimal.Decimal `json:"savingPotential"`
	RemainingAfterSaving    decimal.Decimal `json:"remainingAfterSaving"`
	AllocatedToGoals        decimal.Decimal `json:"allocatedToGoals"`
}

// Summary is everything the month view needs in one response.
type Summary struct {
	Month                types.Month                `json:"month"`
	HouseholdMode        models.HouseholdMode       `json:"householdMode"`
	HasItems             bool                       `json:"hasItems"`
	TotalRevenue         decimal.Decimal            `json:"totalRevenue"`
	TotalCharges         decimal.Decimal            `json:"totalCharges"`
	TotalCommunalCharges decimal.Decimal            `json:"totalCommunalCharges"`
	Owners               []OwnerSummary             `json:"owners"`
	Foyer                compute.FoyerSummary       `json:"foyer"`
	ChargesBreakdown     map[string]decimal.Decimal `json:"chargesBreakdown"`
}

// GetSummary derives the complete financial picture of the selected
// month: aggregate totals, the per-owner chain, the joint-mode view
// and the charges breakdown.
func (co Controller) GetSummary(c *gin.Context) {
	state := co.Store.Snapshot()

	owners := make([]OwnerSummary, 0, len(state.Owners))
	for _, owner := range state.Owners {
		owners = append(owners, OwnerSummary{
			Owner:                   owner,
			Revenue:                 compute.RevenueByOwner(state, owner),
			ContributionPercentage:  compute.ContributionPercentage(state, owner),
			PersonalCharges:         compute.PersonalCharges(state, owner),
			CommunalChargesShare:    compute.CommunalChargesShare(state, owner),
			EffectiveCharges:        compute.EffectiveCharges(state, owner),
			RemainingBeforeCommunal: compute.RemainingBeforeCommunal(state, owner),
			NetIncome:               compute.NetIncome(state, owner),
			SavingPotential:         compute.SavingPotential(state, owner),
			RemainingAfterSaving:    compute.RemainingAfterSaving(state, owner),
			AllocatedToGoals:        compute.TotalAllocatedForMonth(state, state.SelectedMonth, owner),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": Summary{
		Month:                state.SelectedMonth,
		HouseholdMode:        state.HouseholdMode,
		HasItems:             compute.CurrentMonthHasItems(state),
		TotalRevenue:         compute.TotalRevenue(state),
		TotalCharges:         compute.TotalCharges(state),
		TotalCommunalCharges: compute.TotalCommunalCharges(state),
		Owners:               owners,
		Foyer:                compute.Foyer(state),
		ChargesBreakdown:     compute.ChargesBreakdown(state),
	}})
}

// GetCategories lists the distinct category names in use.
func (co Controller) GetCategories(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": compute.UsedCategories(state)})
}
