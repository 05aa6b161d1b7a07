package controllers

import (
	"net/http"

	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/models"
	"github.com/budget-foyer/backend/internal/store"
	"github.com/budget-foyer/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetItems)
		r.POST("", co.CreateItem)
	}

	// Item with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetItem)
		r.PATCH("/:id", co.UpdateItem)
		r.DELETE("/:id", co.DeleteItem)
	}
}

// GetItems returns the selected month's items, or another month's when
// the month query parameter is set. month=all returns everything.
func (co Controller) GetItems(c *gin.Context) {
	state := co.Store.Snapshot()

	month := state.SelectedMonth
	switch query := c.Query("month"); query {
	case "":
	case "all":
		c.JSON(http.StatusOK, gin.H{"data": state.Items})
		return
	default:
		parsed, err := types.ParseMonth(query)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperror.New(err))
			return
		}
		month = parsed
	}

	items := []models.Item{}
	for _, item := range state.Items {
		if item.Month.Equal(month) {
			items = append(items, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateItem adds a new item to the selected month.
func (co Controller) CreateItem(c *gin.Context) {
	var input store.ItemInput
	if err := httputil.BindData(c, &input); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	item := co.Store.AddItem(input)
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

// GetItem returns a single item.
func (co Controller) GetItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	item, ok := co.Store.Item(id)
	if !ok {
		c.JSON(status(ErrResourceNotFound), httperror.New(ErrResourceNotFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

// UpdateItem applies a partial patch. Patching an unknown id is a
// no-op and still returns 204.
func (co Controller) UpdateItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var patch store.ItemPatch
	if err := httputil.BindData(c, &patch); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.EditItem(id, patch)
	c.Status(http.StatusNoContent)
}

// DeleteItem removes an item. Deleting an unknown id is a no-op and
// still returns 204.
func (co Controller) DeleteItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	co.Store.DeleteItem(id)
	c.Status(http.StatusNoContent)
}
