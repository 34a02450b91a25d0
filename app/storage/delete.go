package storage

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func StorageDelete(c *gin.Context, d *internal.Deps) {
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

	// Items don't outlive their storage
	err = d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("storage_id = ?", storage.ID).
			Delete(&model.Item{}).
			Error; err != nil {
			return err
		}

		return tx.Delete(&storage).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Storage deleted successfully",
		"requestID": requestID,
	})
}
