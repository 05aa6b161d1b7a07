package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) registerSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// GetSettings returns the household configuration.
func (co Controller) GetSettings(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": state.Settings})
}

// settingsPatch is a partial configuration update. Absent fields stay
// untouched. SavingRates merges per owner, the distribution replaces
// wholesale.
type settingsPatch struct {
	Owners                      *[]string                  `json:"owners"`
	HouseholdMode               *models.HouseholdMode      `json:"householdMode"`
	SavingRates                 map[string]decimal.Decimal `json:"savingRates"`
	CommunalChargesDistribution map[string]decimal.Decimal `json:"communalChargesDistribution"`
	FoyerSavingRate             *decimal.Decimal           `json:"foyerSavingRate"`
	SelectedMonth               *types.Month               `json:"selectedMonth"`
	Theme                       *string                    `json:"theme"`
}

// UpdateSettings applies a partial configuration update. Owner renames
// run before a mode change so the mode normalizes the new names.
func (co Controller) UpdateSettings(c *gin.Context) {
	var patch settingsPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if patch.Owners != nil {
		co.Store.SetOwners(*patch.Owners)
	}
	if patch.HouseholdMode != nil {
		co.Store.SetHouseholdMode(*patch.HouseholdMode)
	}
	for owner, rate := range patch.SavingRates {
		co.Store.SetSavingRate(owner, rate)
	}
	if patch.CommunalChargesDistribution != nil {
		co.Store.SetCommunalChargesDistribution(patch.CommunalChargesDistribution)
	}
	if patch.FoyerSavingRate != nil {
		co.Store.SetFoyerSavingRate(*patch.FoyerSavingRate)
	}
	if patch.SelectedMonth != nil {
		co.Store.SetSelectedMonth(*patch.SelectedMonth)
	}
	if patch.Theme != nil {
		co.Store.SetTheme(*patch.Theme)
	}

	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": state.Settings})
}
