// Package controllers exposes the budget store and its derivations
// over HTTP. The handlers contain no decision logic of their own, they
// bind requests, call into the store or compute packages and shape the
// response.
package controllers

import (
	"errors"
	"net/http"

	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/importer"
	"github.com/budget-foyer/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrResourceNotFound is returned when a requested record does not
// exist. Mutations on unknown ids stay silent no-ops; only reads
// report this.
var ErrResourceNotFound = errors.New("there is no resource for the specified ID")

// Controller carries the handler dependencies.
type Controller struct {
	Store *store.Store
}

// RegisterRoutes registers all v1 resource routes with the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.registerItemRoutes(r.Group("/items"))
	co.registerMonthRoutes(r)
	co.registerRecurringRoutes(r.Group("/recurring"))
	co.registerBudgetRoutes(r.Group("/budgets"))
	co.registerGoalRoutes(r.Group("/goals"))
	co.registerSettingsRoutes(r.Group("/settings"))
	co.registerSummaryRoutes(r)
	co.registerDataRoutes(r)
}

// status maps an error to the HTTP status of the response reporting it.
func status(err error) int {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID),
		errors.Is(err, importer.ErrInvalidJSON),
		errors.Is(err, importer.ErrUnknownFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseID reads the id path parameter.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}
	return id, nil
}
