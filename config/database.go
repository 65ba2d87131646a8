package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yoockh/docchat/internal/models"
)

var DB *gorm.DB

// InitDatabase opens the relational store and migrates the two chat tables.
// Postgres is the default; DB_DRIVER=sqlite switches to a local file for
// development.
func InitDatabase() error {
	driver := os.Getenv("DB_DRIVER")

	var dial gorm.Dialector
	switch driver {
	case "", "postgres":
		uri := os.Getenv("POSTGRES_URI")
		if uri == "" {
			return errors.New("POSTGRES_URI environment variable is not set")
		}
		dial = postgres.Open(uri)
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "docchat.db"
		}
		dial = sqlite.Open(path)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection Pooling settings
	if driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.AutoMigrate(&models.Session{}, &models.Message{}); err != nil {
		return err
	}

	DB = db
	return nil
}
