package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/compute"
	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/store"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) registerGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
		r.OPTIONS("/:id/allocations", httputil.OptionsPost)
		r.POST("/:id/allocations", co.AllocateToGoal)
	}
}

// GetGoals lists savings goals with their progress. active=true limits
// the list to goals whose target is not reached yet.
func (co Controller) GetGoals(c *gin.Context) {
	state := co.Store.Snapshot()

	goals := state.SavingsGoals
	if c.Query("active") == "true" {
		goals = compute.ActiveGoals(state)
	}

	type goalWithProgress struct {
		Goal     models.SavingsGoal   `json:"goal"`
		Progress compute.GoalProgress `json:"progress"`
	}

	data := make([]goalWithProgress, 0, len(goals))
	for _, goal := range goals {
		data = append(data, goalWithProgress{Goal: goal, Progress: compute.Progress(goal)})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// CreateGoal adds a new savings goal.
func (co Controller) CreateGoal(c *gin.Context) {
	var input store.GoalInput
	if err := httputil.BindData(c, &input); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if !input.TargetAmount.IsPositive() {
		c.JSON(http.StatusBadRequest, httperror.NewFromString("the goal target amount must be positive"))
		return
	}

	goal := co.Store.AddGoal(input)
	c.JSON(http.StatusCreated, gin.H{"data": goal})
}

// GetGoal returns one goal with its progress.
func (co Controller) GetGoal(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	state := co.Store.Snapshot()
	goal, ok := compute.GoalByID(state, id)
	if !ok {
		c.JSON(status(ErrResourceNotFound), httperror.New(ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"goal":     goal,
		"progress": compute.Progress(goal),
	}})
}

// UpdateGoal applies a partial patch to a goal.
func (co Controller) UpdateGoal(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var patch store.GoalPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.EditGoal(id, patch)
	c.Status(http.StatusNoContent)
}

// DeleteGoal removes a goal.
func (co Controller) DeleteGoal(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.DeleteGoal(id)
	c.Status(http.StatusNoContent)
}

type allocationRequest struct {
	Month  types.Month     `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Owner  string          `json:"owner"`
}

// AllocateToGoal upserts the month's contribution to a goal.
func (co Controller) AllocateToGoal(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var request allocationRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	month := request.Month
	if month.IsZero() {
		month = co.Store.Snapshot().SelectedMonth
	}

	co.Store.AllocateToGoal(id, month, request.Amount, request.Owner)
	c.Status(http.StatusNoContent)
}
