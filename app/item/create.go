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

type createBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// ItemCreate adds an item to one of the caller's storages. The storage
// lookup is owner-scoped, creating items in someone else's storage is a 404
func ItemCreate(c *gin.Context, d *internal.Deps) {
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

	if data.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Amount can't be negative",
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

	item := model.Item{
		StorageID:   storage.ID,
		UserID:      userID,
		Name:        data.Name,
		Description: data.Description,
		Amount:      data.Amount,
	}

	if err := d.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
