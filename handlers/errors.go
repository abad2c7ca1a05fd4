package handlers

import (
	"errors"
	"net/http"

	"strikersyard/services/booking"
	"strikersyard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a domain error onto an HTTP status and writes the
// structured error body. Anything without a known code is a 500.
func respondError(c *gin.Context, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		utils.GetLogger().Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusBadRequest
	if be.Code == booking.CodeNotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": be.Message})
}
