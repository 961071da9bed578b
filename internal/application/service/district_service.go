package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
)

// DistrictService handles district operations
type DistrictService struct {
	districtRepo repository.DistrictRepository
}

// NewDistrictService creates a new district service
func NewDistrictService(districtRepo repository.DistrictRepository) *DistrictService {
	return &DistrictService{districtRepo: districtRepo}
}

// DistrictInput carries district fields. Nil pointers are left unchanged on update.
type DistrictInput struct {
	DistrictCode *string
	DistrictName *string
	State        *string
	PostalCode   *string
	ZoneRegion   *string
	ActiveStatus *string
	Remarks      *string
}

// CreateDistrict creates a new district
func (s *DistrictService) CreateDistrict(ctx context.Context, input *DistrictInput) (*entity.District, error) {
	district := &entity.District{}
	if err := applyDistrict(district, input); err != nil {
		return nil, err
	}

	existing, err := s.districtRepo.GetByCode(ctx, district.DistrictCode)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("District code already exists")
	}

	if err := s.districtRepo.Create(ctx, district); err != nil {
		return nil, referenceWriteError("District code", err)
	}
	return district, nil
}

// GetDistrict retrieves a district by ID
func (s *DistrictService) GetDistrict(ctx context.Context, id uuid.UUID) (*entity.District, error) {
	district, err := s.districtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if district == nil {
		return nil, apperror.NewNotFoundError("District")
	}
	return district, nil
}

// ListDistricts lists districts matching search
func (s *DistrictService) ListDistricts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.District], error) {
	districts, total, err := s.districtRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(districts, pag), nil
}

// UpdateDistrict applies the non-nil fields of input to district id
func (s *DistrictService) UpdateDistrict(ctx context.Context, id uuid.UUID, input *DistrictInput) (*entity.District, error) {
	district, err := s.GetDistrict(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DistrictCode != nil && *input.DistrictCode != district.DistrictCode {
		existing, err := s.districtRepo.GetByCode(ctx, *input.DistrictCode)
		if err != nil {
			return nil, apperror.NewStorageError(err)
		}
		if existing != nil && existing.ID != district.ID {
			return nil, apperror.NewConflictError("District code already exists")
		}
	}

	if err := applyDistrict(district, input); err != nil {
		return nil, err
	}
	if err := s.districtRepo.Update(ctx, district); err != nil {
		return nil, referenceWriteError("District code", err)
	}
	return district, nil
}

// DeleteDistrict deletes a district. Ledgers and users in it keep their rows
// with the district unset.
func (s *DistrictService) DeleteDistrict(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetDistrict(ctx, id); err != nil {
		return err
	}
	if err := s.districtRepo.Delete(ctx, id); err != nil {
		return referenceWriteError("District code", err)
	}
	return nil
}

func applyDistrict(district *entity.District, input *DistrictInput) error {
	if input.ActiveStatus != nil {
		status, err := parseActiveStatus(*input.ActiveStatus)
		if err != nil {
			return err
		}
		district.ActiveStatus = status
	}

	setString(&district.DistrictCode, input.DistrictCode)
	setString(&district.DistrictName, input.DistrictName)
	setOptional(&district.State, input.State)
	setOptional(&district.PostalCode, input.PostalCode)
	setOptional(&district.ZoneRegion, input.ZoneRegion)
	setOptional(&district.Remarks, input.Remarks)

	return requireFields(map[string]string{
		"district_code": district.DistrictCode,
		"district_name": district.DistrictName,
	})
}
