package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sangkips/abs-inventory-api/internal/config"
	"github.com/sangkips/abs-inventory-api/internal/domain/entity"
	"github.com/sangkips/abs-inventory-api/pkg/utils"
	"gorm.io/gorm"
)

// SeedDefaultData creates the administrator account when it does not exist.
// Nothing is seeded without an admin password.
func SeedDefaultData(db *gorm.DB, admin *config.AdminConfig) error {
	if admin.Username == "" || admin.Password == "" {
		slog.Info("admin credentials not configured, skipping seed")
		return nil
	}

	var existing entity.User
	err := db.Where("username = ?", admin.Username).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists", "username", admin.Username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := entity.User{
		Username: admin.Username,
		Password: hashed,
		Role:     entity.RoleAdmin,
	}
	if admin.Email != "" {
		user.Email = &admin.Email
	}
	if admin.FullName != "" {
		user.FullName = &admin.FullName
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("admin user created", "username", admin.Username)
	return nil
}
