package configs

import (
	"fmt"
	"log"
	"time"

	"riderservice/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the store handle without touching the server:
// the mysql dialector is opened with ping and version probing disabled, so
// a store that is still starting does not fail the open. WaitForDB owns
// readiness. TranslateError makes duplicate-key violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func ConnectionDB(cfg *Config) error {
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		gormCfg.DisableAutomaticPing = true
		database, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			SkipInitializeWithVersion: true,
		}), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

// WaitForDB polls the store with a trivial query until it answers or the
// retries run out. Bootstrap must not proceed without a live store.
func WaitForDB(database *gorm.DB, retries int, delay time.Duration) error {
	for i := 1; i <= retries; i++ {
		if err := database.Exec("SELECT 1").Error; err == nil {
			log.Println("DB available")
			return nil
		}
		log.Printf("DB not ready, retry %d/%d", i, retries)
		time.Sleep(delay)
	}
	return fmt.Errorf("database not available after %d retries", retries)
}

// SetupDatabase creates missing tables. It never drops or alters existing
// ones.
func SetupDatabase(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.Rider{},
		&entity.Log{},
	)
}
