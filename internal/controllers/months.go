package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerMonthRoutes(r *gin.RouterGroup) {
	months := r.Group("/months")
	{
		months.OPTIONS("", httputil.OptionsGet)
		months.GET("", co.GetMonths)
		months.OPTIONS("/duplicate", httputil.OptionsPost)
		months.POST("/duplicate", co.DuplicateMonth)
	}

	r.OPTIONS("/evolution", httputil.OptionsGet)
	r.GET("/evolution", co.GetEvolution)
}

// GetMonths lists every month any item references, plus the selected
// one.
func (co Controller) GetMonths(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": state.AvailableMonths()})
}

type duplicateMonthRequest struct {
	Source types.Month `json:"source"`
	Target types.Month `json:"target"`
}

// DuplicateMonth copies all items of the source month into the target
// month.
func (co Controller) DuplicateMonth(c *gin.Context) {
	var request duplicateMonthRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if !co.Store.DuplicateMonth(request.Source, request.Target) {
		c.JSON(http.StatusNotFound, httperror.NewFromString("the source month has no items"))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEvolution returns the month-by-month income, charges and net over
// all known months.
func (co Controller) GetEvolution(c *gin.Context) {
	state := co.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": compute.MonthlyEvolution(state)})
}
