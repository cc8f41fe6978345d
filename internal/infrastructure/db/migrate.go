package db

import (
	"context"
	"database/sql"
	"fmt"

	"reels-service/internal/domain/entities"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// AutoMigrate creates the tables from the entity definitions. Used for
// throwaway databases; production schemas come from the goose migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Video{},
		&entities.Reel{},
	)
}

// Migrate applies the registered goose migrations.
func Migrate(ctx context.Context, sqlDB *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
