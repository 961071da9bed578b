package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/internal/domain/enum"
	infraRepo "github.com/sangkips/abs-inventory-api/internal/infrastructure/repository"
	"github.com/sangkips/abs-inventory-api/pkg/apperror"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestItemService_CreateSetsStockFromOpening(t *testing.T) {
	f := newFixture(t)
	svc := NewItemService(infraRepo.NewItemRepository(f.db), infraRepo.NewOrderLineRepository(f.db))
	opening := decimal.RequireFromString("12.5")

	item, err := svc.CreateItem(context.Background(), &ItemInput{
		ItemCode:        strPtr("ST-9"),
		ItemName:        strPtr("Steel 9"),
		OpeningQuantity: &opening,
	})
	require.NoError(t, err)
	assert.True(t, opening.Equal(item.StockQuantity))
	assert.Equal(t, entity.DefaultItemType, item.ItemType)
	assert.Equal(t, enum.ActiveStatusActive, item.ActiveStatus)
}

func TestItemService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	svc := NewItemService(infraRepo.NewItemRepository(f.db), infraRepo.NewOrderLineRepository(f.db))
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, &ItemInput{ItemCode: strPtr("ST-1"), ItemName: strPtr("Dup")})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	_, err = svc.CreateItem(ctx, &ItemInput{ItemName: strPtr("No code")})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.KindInvalidInput, appErr.Kind)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "item_code", appErr.Errors[0].Field)
}

func TestItemService_DeleteItemInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewItemService(infraRepo.NewItemRepository(f.db), infraRepo.NewOrderLineRepository(f.db))

	_, err := f.orders.CreateOrder(ctx, f.input("ORD-20240115-001", "10"), false)
	require.NoError(t, err)

	err = svc.DeleteItem(ctx, f.itemIDs[0])
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	require.NoError(t, svc.DeleteItem(ctx, f.itemIDs[2]))
	err = svc.DeleteItem(ctx, f.itemIDs[2])
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestLedgerService_UpdateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewLedgerService(infraRepo.NewLedgerRepository(f.db), infraRepo.NewDistrictRepository(f.db))

	created, err := svc.CreateLedger(ctx, &LedgerInput{
		PartyCode: strPtr("P-02"),
		PartyName: strPtr("Bharat Steel"),
		PartyType: strPtr("Supplier"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PartyTypeSupplier, created.PartyType)

	updated, err := svc.UpdateLedger(ctx, created.ID, &LedgerInput{
		MobileNumber: strPtr("9800000000"),
		DistrictID:   &f.district.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.MobileNumber)
	assert.Equal(t, "9800000000", *updated.MobileNumber)
	require.NotNil(t, updated.District)
	assert.Equal(t, "D-01", updated.District.DistrictCode)

	_, err = svc.UpdateLedger(ctx, created.ID, &LedgerInput{PartyCode: strPtr("P-01")})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	missing := uuid.New()
	_, err = svc.UpdateLedger(ctx, created.ID, &LedgerInput{DistrictID: &missing})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	page, err := svc.ListLedgers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 10}, "bharat")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "P-02", page.Items[0].PartyCode)
}

func TestLedgerService_DeleteKeepsOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewLedgerService(infraRepo.NewLedgerRepository(f.db), infraRepo.NewDistrictRepository(f.db))

	order, err := f.orders.CreateOrder(ctx, f.input("ORD-20240115-001", "10"), false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLedger(ctx, f.ledger.ID))

	stored, err := f.orders.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LedgerID)
	assert.Empty(t, stored.PartyName)
}

func TestDistrictService_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewDistrictService(infraRepo.NewDistrictRepository(f.db))

	created, err := svc.CreateDistrict(ctx, &DistrictInput{
		DistrictCode: strPtr("D-02"),
		DistrictName: strPtr("Nashik"),
		State:        strPtr("Maharashtra"),
	})
	require.NoError(t, err)

	_, err = svc.CreateDistrict(ctx, &DistrictInput{DistrictCode: strPtr("D-02"), DistrictName: strPtr("Again")})
	assert.True(t, errors.Is(err, apperror.ErrConflict))

	updated, err := svc.UpdateDistrict(ctx, created.ID, &DistrictInput{ActiveStatus: strPtr("Inactive")})
	require.NoError(t, err)
	assert.Equal(t, enum.ActiveStatusInactive, updated.ActiveStatus)

	_, err = svc.UpdateDistrict(ctx, created.ID, &DistrictInput{ActiveStatus: strPtr("Dormant")})
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	require.NoError(t, svc.DeleteDistrict(ctx, created.ID))
	_, err = svc.GetDistrict(ctx, created.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	user := &entity.User{Username: "operator", Password: hash}
	require.NoError(t, infraRepo.NewUserRepository(f.db).Create(ctx, user))

	jwt := utils.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(infraRepo.NewUserRepository(f.db), jwt)

	out, err := svc.Login(ctx, &LoginInput{Username: "operator", Password: "s3cret"})
	require.NoError(t, err)
	assert.EqualValues(t, 3600, out.ExpiresIn)

	claims, err := jwt.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)

	me, err := svc.GetCurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, me.LastLoginAt)

	_, err = svc.Login(ctx, &LoginInput{Username: "operator", Password: "nope"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials))

	_, err = svc.Login(ctx, &LoginInput{Username: "ghost", Password: "s3cret"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials))
}
