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

func ItemFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No item ID provided",
			"requestID": requestID,
		})
		return
	}

	var item model.Item

	err := d.DB.
		Where("user_id = ? AND id = ?", userID, itemID).
		First(&item).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Item not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch item from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
