package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/store"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerRecurringRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetRecurringItems)
		r.POST("", co.CreateRecurringItem)
	}

	// Applying templates to a month
	{
		r.OPTIONS("/apply", httputil.OptionsPost)
		r.POST("/apply", co.ApplyRecurringItems)
	}

	// Template with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.PATCH("/:id", co.UpdateRecurringItem)
		r.DELETE("/:id", co.DeleteRecurringItem)
		r.OPTIONS("/:id/toggle", httputil.OptionsPost)
		r.POST("/:id/toggle", co.ToggleRecurringItem)
	}
}

// GetRecurringItems lists all templates.
func (co Controller) GetRecurringItems(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": state.RecurringItems})
}

// CreateRecurringItem adds a new monthly template.
func (co Controller) CreateRecurringItem(c *gin.Context) {
	var input store.RecurringInput
	if err := httputil.BindData(c, &input); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	recurring := co.Store.AddRecurringItem(input)
	c.JSON(http.StatusCreated, gin.H{"data": recurring})
}

// UpdateRecurringItem applies a partial patch to a template.
func (co Controller) UpdateRecurringItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var patch store.RecurringPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.EditRecurringItem(id, patch)
	c.Status(http.StatusNoContent)
}

// DeleteRecurringItem removes a template.
func (co Controller) DeleteRecurringItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.DeleteRecurringItem(id)
	c.Status(http.StatusNoContent)
}

// ToggleRecurringItem flips a template's active flag.
func (co Controller) ToggleRecurringItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.ToggleRecurringItem(id)
	c.Status(http.StatusNoContent)
}

type applyRecurringRequest struct {
	Month types.Month `json:"month"`
}

// ApplyRecurringItems materializes all active templates into the given
// month and reports how many items were created, plus whether the month
// had been applied before. Deciding whether to warn about a repeated
// application is the caller's business; the backend does not block it.
func (co Controller) ApplyRecurringItems(c *gin.Context) {
	var request applyRecurringRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	month := request.Month
	if month.IsZero() {
		month = co.Store.Snapshot().SelectedMonth
	}

	alreadyApplied := co.Store.HasRecurringBeenApplied(month)
	count := co.Store.ApplyRecurringItems(month)

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"count":          count,
		"month":          month,
		"alreadyApplied": alreadyApplied,
	}})
}
