package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ItemService handles stock item operations
type ItemService struct {
	itemRepo repository.ItemRepository
	lineRepo repository.OrderLineRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, lineRepo repository.OrderLineRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, lineRepo: lineRepo}
}

// ItemInput carries item fields. Nil pointers are left unchanged on update.
type ItemInput struct {
	ItemCode          *string
	ItemName          *string
	ItemCategory      *string
	StockGroup        *string
	UnitOfMeasure     *string
	HSNCode           *string
	GSTRate           *decimal.Decimal
	CGSTRate          *decimal.Decimal
	SGSTRate          *decimal.Decimal
	IGSTRate          *decimal.Decimal
	ItemType          *string
	OpeningQuantity   *decimal.Decimal
	OpeningValue      *decimal.Decimal
	MinimumStockLevel *decimal.Decimal
	ActiveStatus      *string
}

// CreateItem creates a new item. Stock starts at the opening quantity.
func (s *ItemService) CreateItem(ctx context.Context, input *ItemInput) (*entity.Item, error) {
	item := &entity.Item{}
	if err := applyItem(item, input); err != nil {
		return nil, err
	}
	item.StockQuantity = item.OpeningQuantity

	existing, err := s.itemRepo.GetByCode(ctx, item.ItemCode)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Item code already exists")
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, referenceWriteError("Item code", err)
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items matching search
func (s *ItemService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, apperror.NewStorageError(err)
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItem applies the non-nil fields of input to item id. Stock quantity
// is not changed.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *ItemInput) (*entity.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ItemCode != nil && *input.ItemCode != item.ItemCode {
		existing, err := s.itemRepo.GetByCode(ctx, *input.ItemCode)
		if err != nil {
			return nil, apperror.NewStorageError(err)
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperror.NewConflictError("Item code already exists")
		}
	}

	if err := applyItem(item, input); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, referenceWriteError("Item code", err)
	}
	return item, nil
}

// DeleteItem deletes an item that no order line references
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}

	used, err := s.lineRepo.CountByItemID(ctx, id)
	if err != nil {
		return apperror.NewStorageError(err)
	}
	if used > 0 {
		return apperror.NewConflictError("Item is used by existing orders")
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return referenceWriteError("Item code", err)
	}
	return nil
}

func applyItem(item *entity.Item, input *ItemInput) error {
	if input.ActiveStatus != nil {
		status, err := parseActiveStatus(*input.ActiveStatus)
		if err != nil {
			return err
		}
		item.ActiveStatus = status
	}

	setString(&item.ItemCode, input.ItemCode)
	setString(&item.ItemName, input.ItemName)
	setString(&item.ItemType, input.ItemType)
	setOptional(&item.ItemCategory, input.ItemCategory)
	setOptional(&item.StockGroup, input.StockGroup)
	setOptional(&item.UnitOfMeasure, input.UnitOfMeasure)
	setOptional(&item.HSNCode, input.HSNCode)
	setDecimal(&item.GSTRate, input.GSTRate)
	setDecimal(&item.CGSTRate, input.CGSTRate)
	setDecimal(&item.SGSTRate, input.SGSTRate)
	setDecimal(&item.IGSTRate, input.IGSTRate)
	setDecimal(&item.OpeningQuantity, input.OpeningQuantity)
	setDecimal(&item.OpeningValue, input.OpeningValue)
	setDecimal(&item.MinimumStockLevel, input.MinimumStockLevel)

	if item.ItemType == "" {
		item.ItemType = entity.DefaultItemType
	}

	return requireFields(map[string]string{
		"item_code": item.ItemCode,
		"item_name": item.ItemName,
	})
}

func setDecimal(dst *decimal.Decimal, src *decimal.Decimal) {
	if src != nil {
		*dst = *src
	}
}
