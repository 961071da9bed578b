package repository

import (
	"errors"
	"testing"

	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"duplicate", gorm.ErrDuplicatedKey, domainRepo.ErrDuplicateKey},
		{"foreign key", gorm.ErrForeignKeyViolated, domainRepo.ErrReferenced},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
