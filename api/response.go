package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avevent/backend/internal/validate"
	"github.com/gin-gonic/gin"
)

// respondValidation writes the 400 envelope carrying field-level errors.
func respondValidation(c *gin.Context, errs *validate.Errors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  errs.Fields,
	})
}

// respondBadRequest writes a 400 with a fixed message.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// respondNotFound writes a 404 with a fixed message.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

// respondInternal logs the underlying failure and writes the opaque 500
// envelope. Store errors never leak detail to the caller.
func respondInternal(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}

// validationErrors unwraps a service error into field errors if it is one.
func validationErrors(err error) (*validate.Errors, bool) {
	var errs *validate.Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
