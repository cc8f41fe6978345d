package repositories

import (
	"errors"
	"fmt"

	"reels-service/internal/domain/repositories"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the domain sentinels and wraps the rest
// with the failed operation.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, repositories.ErrRecordNotFound):
		return repositories.ErrRecordNotFound
	case errors.Is(err, repositories.ErrVideoInUse), errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return repositories.ErrVideoInUse
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
