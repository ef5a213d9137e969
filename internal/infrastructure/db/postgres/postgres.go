package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config captures the minimal settings required to establish a Postgres
// connection.
type Config struct {
	DSN string
}

// Connect opens a gorm connection, enables error translation so unique
// violations surface as gorm.ErrDuplicatedKey, and migrates the schema.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.AutoMigrate(
		&keywordRow{},
		&contractorRow{},
		&contractorKeywordRow{},
		&historyRow{},
		&taskRow{},
		&employeeRow{},
	); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	return db, nil
}
