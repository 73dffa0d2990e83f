package database

import (
	"go.uber.org/zap"

	"stayops/utils"
)

// RunMigrations runs all database migrations
func RunMigrations() error {
	zap.L().Info("running database migrations")

	// AutoMigrate will create tables if they don't exist
	if err := DB.AutoMigrate(
		&User{},
		&Property{},
		&Booking{},
		&Message{},
		&HousekeepingTask{},
		&Payment{},
		&OtaIntegration{},
		&Analytics{},
	); err != nil {
		zap.L().Error("migration failed", zap.Error(err))
		return err
	}

	zap.L().Info("database migrations completed")
	return nil
}

// SeedDefaultAdmin creates a default admin if none exists
func SeedDefaultAdmin() {
	var count int64
	if err := DB.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		zap.L().Error("failed to check existing admin", zap.Error(err))
		return
	}

	if count > 0 {
		return
	}

	hash, err := utils.HashPassword("changeme")
	if err != nil {
		zap.L().Error("failed to hash default admin password", zap.Error(err))
		return
	}

	admin := User{
		Username:     "admin",
		Email:        "admin@stayops.local",
		PasswordHash: hash,
		Role:         RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		zap.L().Error("failed to create default admin", zap.Error(err))
		return
	}
	zap.L().Info("default admin user created", zap.String("username", admin.Username))
}
