// Package migrations brings the schema up to date with the domain models.
package migrations

import (
	"fmt"

	"taskboard/internal/app/board"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models are listed in foreign key order.
var models = []interface{}{
	&user.Account{},
	&board.Board{},
	&task.Task{},
}

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	logger.Info("Database migrations completed", zap.Int("models", len(models)))
	return nil
}
