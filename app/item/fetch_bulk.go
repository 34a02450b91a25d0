package item

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemFetchBulk lists the items of one of the caller's storages
func ItemFetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	storageID := c.Param("id")
	if storageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No storage ID provided",
			"requestID": requestID,
		})
		return
	}

	var storage model.Storage

	err := d.DB.
		Where("user_id = ? AND id = ?", userID, storageID).
		First(&storage).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Storage not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch storage from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	items := []model.Item{}

	err = d.DB.
		Where("storage_id = ?", storage.ID).
		Order("created_at DESC").
		Find(&items).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch items from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}
