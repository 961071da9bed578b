package repository

import (
	"errors"
	"fmt"

	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"gorm.io/gorm"
)

// translateError maps constraint failures onto the domain sentinels.
// Both dialectors run with TranslateError, so sqlite3 extended codes
// 1555/2067/787 and Postgres SQLSTATE 23505/23503 arrive here as gorm's own
// sentinels. The original error text is kept in the wrapped message.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domainRepo.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", domainRepo.ErrReferenced, err)
	}
	return err
}
