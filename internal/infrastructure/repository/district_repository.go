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

type districtRepository struct {
	db *gorm.DB
}

// NewDistrictRepository creates a new district repository
func NewDistrictRepository(db *gorm.DB) domainRepo.DistrictRepository {
	return &districtRepository{db: db}
}

func (r *districtRepository) Create(ctx context.Context, district *entity.District) error {
	return translateError(r.db.WithContext(ctx).Create(district).Error)
}

func (r *districtRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.District, error) {
	var district entity.District
	err := r.db.WithContext(ctx).First(&district, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &district, err
}

func (r *districtRepository) GetByCode(ctx context.Context, code string) (*entity.District, error) {
	var district entity.District
	err := r.db.WithContext(ctx).First(&district, "district_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &district, err
}

func (r *districtRepository) Update(ctx context.Context, district *entity.District) error {
	return translateError(r.db.WithContext(ctx).Save(district).Error)
}

func (r *districtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Delete(&entity.District{}, "id = ?", id).Error)
}

func (r *districtRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.District, int64, error) {
	var districts []entity.District
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.District{}).
		Scopes(SearchScope(search, "district_code", "district_name", "state"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params)).
		Order("created_at DESC").
		Find(&districts).Error

	return districts, total, err
}

func (r *districtRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.District{}).Count(&count).Error
	return count, err
}
