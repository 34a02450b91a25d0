package storage

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageFetchBulk returns all storages owned by the caller
func StorageFetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	storages := []model.Storage{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&storages).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch storages from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, storages)
}
