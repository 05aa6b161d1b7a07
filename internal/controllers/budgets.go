package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetCategoryBudgets)
	}

	// Budget per category name
	{
		r.OPTIONS("/:category", httputil.OptionsPutDelete)
		r.PUT("/:category", co.SetCategoryBudget)
		r.DELETE("/:category", co.DeleteCategoryBudget)
		r.OPTIONS("/:category/status", httputil.OptionsGet)
		r.GET("/:category/status", co.GetCategoryBudgetStatus)
	}
}

// GetCategoryBudgets lists the configured limits per category.
func (co Controller) GetCategoryBudgets(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": state.CategoryBudgets})
}

// SetCategoryBudget sets the limits for one category.
func (co Controller) SetCategoryBudget(c *gin.Context) {
	var budget models.CategoryBudget
	if err := httputil.BindData(c, &budget); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.SetCategoryBudget(c.Param("category"), budget)
	c.Status(http.StatusNoContent)
}

// DeleteCategoryBudget removes the limits for one category.
func (co Controller) DeleteCategoryBudget(c *gin.Context) {
	co.Store.DeleteCategoryBudget(c.Param("category"))
	c.Status(http.StatusNoContent)
}

// GetCategoryBudgetStatus classifies the selected month's spending in
// the category against its limit. Without a configured positive limit
// the data is null.
func (co Controller) GetCategoryBudgetStatus(c *gin.Context) {
	state := co.Store.Snapshot()
	budgetStatus := compute.CategoryBudgetStatus(state, c.Param("category"), c.Query("owner"))
	c.JSON(http.StatusOK, gin.H{"data": budgetStatus})
}
