package controllers

import (
	"io"
	"net/http"

	"github.com/budget-foyer/backend/internal/httperror"
	"github.com/budget-foyer/backend/internal/httputil"
	"github.com/budget-foyer/backend/internal/importer"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

func (co Controller) registerDataRoutes(r *gin.RouterGroup) {
	export := r.Group("/export")
	{
		export.OPTIONS("", httputil.OptionsGet)
		export.GET("", co.ExportJSON)
		export.OPTIONS("/csv", httputil.OptionsGet)
		export.GET("/csv", co.ExportCSV)
	}

	r.OPTIONS("/import", httputil.OptionsPost)
	r.POST("/import", co.Import)
}

// ExportJSON returns the full state as a v3 export document.
func (co Controller) ExportJSON(c *gin.Context) {
	data, err := co.Store.ExportJSON()
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budget-export.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV returns the selected month's items as a semicolon-delimited
// table.
func (co Controller) ExportCSV(c *gin.Context) {
	data, err := co.Store.ExportCSV()
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budget-export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// Import reads an uploaded export file and merges it into the state.
//
// The mode form field selects the semantics: "month" (the default)
// replaces only the selected month's items, "full" replaces the whole
// collection. The response is always a result object, a failed import
// is reported with success false and the reason.
func (co Controller) Import(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "you must send a file to import"})
		return
	}

	// Only the JSON export format can be imported.
	if !glob.Glob("*.json", formFile.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "this file type is not supported, upload a *.json export"})
		return
	}

	file, err := formFile.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	mode := importer.ModeMonth
	if c.PostForm("mode") == string(importer.ModeFull) {
		mode = importer.ModeFull
	}

	count, err := co.Store.ImportJSON(content, mode)
	if err != nil {
		c.JSON(status(err), gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
