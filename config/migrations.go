package config

import (
	"os"

	"github.com/go-gormigrate/gormigrate/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/dispatch/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "01092026_create_dispatch_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Truck{}, &models.Trip{},
					&models.OutOfServiceMark{}, &models.DailyNote{}, &models.AdminAudit{})
			},
		},
		{
			ID:      "01092026_seed_admin_user",
			Migrate: seedAdminUser,
		},
	})
	return m.Migrate()
}

// seedAdminUser creates the bootstrap admin account unless one already
// exists for the configured username.
func seedAdminUser(tx *gorm.DB) error {
	username := os.Getenv("ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	var count int64
	if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return tx.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}).Error
}
