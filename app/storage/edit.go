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

type editBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func StorageEdit(c *gin.Context, d *internal.Deps) {
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

	var data editBody
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == nil && data.Description == nil && data.Location == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No edit options provided",
			"requestID": requestID,
		})
		return
	}

	if data.Name != nil && *data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Empty name",
			"requestID": requestID,
		})
		return
	}

	if data.Location != nil && *data.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Empty location",
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

	if data.Name != nil {
		storage.Name = *data.Name
	}
	if data.Description != nil {
		storage.Description = *data.Description
	}
	if data.Location != nil {
		storage.Location = *data.Location
	}

	if err := d.DB.Save(&storage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, storage)
}
