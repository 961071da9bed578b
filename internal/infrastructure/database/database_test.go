package database

import (
	"testing"

	"github.com/sangkips/abs-inventory-api/internal/config"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return &config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: MemoryPath}
}

func TestOpen_SQLiteMigrates(t *testing.T) {
	db, err := Open(memoryConfig(t))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"districts", "ledgers", "items", "users", "orders", "order_items", "idempotency_keys"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDefaultData_CreatesAdminOnce(t *testing.T) {
	db, err := Open(memoryConfig(t))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	admin := &config.AdminConfig{Username: "admin", Password: "s3cret", Email: "admin@abs.local"}
	require.NoError(t, SeedDefaultData(db, admin))
	require.NoError(t, SeedDefaultData(db, admin))

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)
	assert.True(t, utils.CheckPasswordHash("s3cret", users[0].Password))
}

func TestSeedDefaultData_SkipsWithoutPassword(t *testing.T) {
	db, err := Open(memoryConfig(t))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, SeedDefaultData(db, &config.AdminConfig{Username: "admin"}))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on&_busy_timeout=5000", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:x.db?cache=shared"))
}
