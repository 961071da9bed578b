package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
)

// DistrictRepository defines the interface for district data operations
type DistrictRepository interface {
	Create(ctx context.Context, district *entity.District) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.District, error)
	GetByCode(ctx context.Context, code string) (*entity.District, error)
	Update(ctx context.Context, district *entity.District) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.District, int64, error)
	Count(ctx context.Context) (int64, error)
}

// LedgerRepository defines the interface for party (ledger) data operations
type LedgerRepository interface {
	Create(ctx context.Context, ledger *entity.Ledger) error
	// GetByID returns the ledger with its district loaded, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error)
	GetByCode(ctx context.Context, code string) (*entity.Ledger, error)
	Update(ctx context.Context, ledger *entity.Ledger) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Ledger, int64, error)
	Count(ctx context.Context) (int64, error)
}

// ItemRepository defines the interface for stock item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// GetByIDs returns the items that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error)
	Count(ctx context.Context) (int64, error)
}
