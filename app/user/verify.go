package user

import (
	"bitwise74/storage-api/internal"
	"bitwise74/storage-api/internal/model"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserVerify consumes a verification key sent by mail. The caller presents
// the encrypted user ID plus the key in headers. Consumption is a conditional
// single-row update, so two racing requests on the same key can't both win
func UserVerify(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	encryptedID := c.GetHeader("User-Id")
	verificationKey := c.GetHeader("Verification-Key")
	if encryptedID == "" || verificationKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Missing user ID or verification key in headers",
			"requestID": requestID,
		})
		return
	}

	userID, err := d.Cipher.Open(encryptedID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed user ID",
			"requestID": requestID,
		})
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		// Consumed and missing tokens look the same from here. Deliberate:
		// a key that was already used is "invalid or expired" to the caller
		r := tx.Model(&model.VerificationToken{}).
			Where("user_id = ? AND token = ? AND active = ?", userID, verificationKey, true).
			Updates(map[string]any{
				"active":  false,
				"used_at": time.Now(),
			})
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"verified": true,
				"active":   true,
			}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Invalid or expired verification key",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to consume verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "User verified successfully",
		"requestID": requestID,
	})
}
