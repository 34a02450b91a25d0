package storage

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func StorageCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Name field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Location field can't be empty",
			"requestID": requestID,
		})
		return
	}

	storage := model.Storage{
		UserID:      userID,
		Name:        data.Name,
		Description: data.Description,
		Location:    data.Location,
	}

	if err := d.DB.Create(&storage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create storage", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, storage)
}
