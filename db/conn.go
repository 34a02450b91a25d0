// Package db contains the database connection setup
package db

import (
	"bitwise74/storage-api/internal/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the database selected by database.driver and migrates the
// schema. Errors that come back from handlers rely on gorm's translated
// errors (gorm.ErrDuplicatedKey and friends), so TranslateError stays on
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dsn := viper.GetString("database.dsn")

	switch viper.GetString("database.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	if viper.GetBool("app.migrate") {
		err = db.AutoMigrate(model.User{}, model.VerificationToken{}, model.Storage{}, model.Item{})
		if err != nil {
			return nil, fmt.Errorf("failed to automigrate tables, %w", err)
		}
	}

	return db, nil
}
