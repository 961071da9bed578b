package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
)

// LedgerService handles party (ledger) operations
type LedgerService struct {
	ledgerRepo   repository.LedgerRepository
	districtRepo repository.DistrictRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo repository.LedgerRepository, districtRepo repository.DistrictRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo, districtRepo: districtRepo}
}

// LedgerInput carries ledger fields. Nil pointers are left unchanged on update.
type LedgerInput struct {
	PartyCode     *string
	PartyName     *string
	PartyType     *string
	Address       *string
	DistrictID    *uuid.UUID
	State         *string
	GSTIN         *string
	PAN           *string
	ContactPerson *string
	MobileNumber  *string
	Email         *string
	LedgerMapping *string
	ActiveStatus  *string
}

// CreateLedger creates a new ledger
func (s *LedgerService) CreateLedger(ctx context.Context, input *LedgerInput) (*entity.Ledger, error) {
	ledger := &entity.Ledger{}
	if err := s.apply(ctx, ledger, input); err != nil {
		return nil, err
	}
	if err := requireFields(map[string]string{"party_code": ledger.PartyCode, "party_name": ledger.PartyName}); err != nil {
		return nil, err
	}

	existing, err := s.ledgerRepo.GetByCode(ctx, ledger.PartyCode)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Party code already exists")
	}

	if err := s.ledgerRepo.Create(ctx, ledger); err != nil {
		return nil, referenceWriteError("Party code", err)
	}
	return s.GetLedger(ctx, ledger.ID)
}

// GetLedger retrieves a ledger by ID with its district
func (s *LedgerService) GetLedger(ctx context.Context, id uuid.UUID) (*entity.Ledger, error) {
	ledger, err := s.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if ledger == nil {
		return nil, apperror.NewNotFoundError("Ledger")
	}
	return ledger, nil
}

// ListLedgers lists ledgers matching search
func (s *LedgerService) ListLedgers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Ledger], error) {
	ledgers, total, err := s.ledgerRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(ledgers, pag), nil
}

// UpdateLedger applies the non-nil fields of input to ledger id
func (s *LedgerService) UpdateLedger(ctx context.Context, id uuid.UUID, input *LedgerInput) (*entity.Ledger, error) {
	ledger, err := s.GetLedger(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PartyCode != nil && *input.PartyCode != ledger.PartyCode {
		existing, err := s.ledgerRepo.GetByCode(ctx, *input.PartyCode)
		if err != nil {
			return nil, apperror.NewStorageError(err)
		}
		if existing != nil && existing.ID != ledger.ID {
			return nil, apperror.NewConflictError("Party code already exists")
		}
	}

	if err := s.apply(ctx, ledger, input); err != nil {
		return nil, err
	}
	if err := requireFields(map[string]string{"party_code": ledger.PartyCode, "party_name": ledger.PartyName}); err != nil {
		return nil, err
	}

	ledger.District = nil
	if err := s.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, referenceWriteError("Party code", err)
	}
	return s.GetLedger(ctx, ledger.ID)
}

// DeleteLedger deletes a ledger. Orders keep their rows with the party unset.
func (s *LedgerService) DeleteLedger(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetLedger(ctx, id); err != nil {
		return err
	}
	if err := s.ledgerRepo.Delete(ctx, id); err != nil {
		return referenceWriteError("Party code", err)
	}
	return nil
}

func (s *LedgerService) apply(ctx context.Context, ledger *entity.Ledger, input *LedgerInput) error {
	if input.PartyType != nil {
		pt := enum.PartyType(*input.PartyType)
		if !pt.IsValid() {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "party_type", Message: "party_type must be Customer or Supplier"},
			})
		}
		ledger.PartyType = pt
	}
	if input.ActiveStatus != nil {
		status, err := parseActiveStatus(*input.ActiveStatus)
		if err != nil {
			return err
		}
		ledger.ActiveStatus = status
	}
	if input.DistrictID != nil {
		district, err := s.districtRepo.GetByID(ctx, *input.DistrictID)
		if err != nil {
			return apperror.NewStorageError(err)
		}
		if district == nil {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "district_id", Message: "district not found"},
			})
		}
		ledger.DistrictID = input.DistrictID
	}

	setString(&ledger.PartyCode, input.PartyCode)
	setString(&ledger.PartyName, input.PartyName)
	setOptional(&ledger.Address, input.Address)
	setOptional(&ledger.State, input.State)
	setOptional(&ledger.GSTIN, input.GSTIN)
	setOptional(&ledger.PAN, input.PAN)
	setOptional(&ledger.ContactPerson, input.ContactPerson)
	setOptional(&ledger.MobileNumber, input.MobileNumber)
	setOptional(&ledger.Email, input.Email)
	setOptional(&ledger.LedgerMapping, input.LedgerMapping)
	return nil
}

// referenceWriteError maps repository write failures for reference records
func referenceWriteError(codeLabel string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperror.NewConflictError(codeLabel + " already exists")
	case errors.Is(err, repository.ErrReferenced):
		return apperror.NewConflictError("Record is still referenced")
	default:
		return apperror.NewStorageError(err)
	}
}
