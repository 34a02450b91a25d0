package service

import (
	"bitwise74/storage-api/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// How long consumed tokens are kept around for auditing before deletion
const tokenRetention = time.Hour * 24 * 60

// TokenCleanup periodically deletes consumed verification tokens that are
// past their retention window. Active tokens are never touched
func TokenCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			r := db.
				Where("active = ? AND created_at < ?", false, time.Now().Add(-tokenRetention)).
				Delete(&model.VerificationToken{})
			if r.Error != nil {
				zap.L().Error("Failed to cleanup verification tokens", zap.Error(r.Error))
				continue
			}

			if r.RowsAffected > 0 {
				zap.L().Debug("Cleaned up consumed tokens", zap.Int64("count", r.RowsAffected))
			}
		}
	}()
}
