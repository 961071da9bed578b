package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	domainRepo "github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, ledger *entity.Ledger) error {
	return translateError(r.db.WithContext(ctx).Omit("District").Create(ledger).Error)
}

func (r *ledgerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	var ledger entity.Ledger
	err := r.db.WithContext(ctx).Preload("District").First(&ledger, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ledger, err
}

func (r *ledgerRepository) GetByCode(ctx context.Context, code string) (*entity.Ledger, error) {
	var ledger entity.Ledger
	err := r.db.WithContext(ctx).First(&ledger, "party_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ledger, err
}

func (r *ledgerRepository) Update(ctx context.Context, ledger *entity.Ledger) error {
	return translateError(r.db.WithContext(ctx).Omit("District").Save(ledger).Error)
}

func (r *ledgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Delete(&entity.Ledger{}, "id = ?", id).Error)
}

func (r *ledgerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Ledger, int64, error) {
	var ledgers []entity.Ledger
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ledger{}).
		Scopes(SearchScope(search, "party_code", "party_name", "mobile_number", "gstin"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params)).
		Preload("District").
		Order("created_at DESC").
		Find(&ledgers).Error

	return ledgers, total, err
}

func (r *ledgerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Ledger{}).Count(&count).Error
	return count, err
}
