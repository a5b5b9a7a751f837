package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ozadencsevda/restaurant-api/entity"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	return db.Create(&admin).Error
}

// SeedCategories inserts a starter menu layout on an empty database.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []entity.Category{
		{Name: "Starters", Description: "Soups and appetizers", DisplayOrder: 1, IsActive: true},
		{Name: "Main Courses", Description: "Meat, chicken and fish dishes", DisplayOrder: 2, IsActive: true},
		{Name: "Salads", Description: "Fresh salads", DisplayOrder: 3, IsActive: true},
		{Name: "Beverages", Description: "Hot and cold drinks", DisplayOrder: 4, IsActive: true},
		{Name: "Desserts", Description: "Sweets and desserts", DisplayOrder: 5, IsActive: true},
	}
	if err := db.Create(&starters).Error; err != nil {
		return err
	}
	log.Println("starter categories seeded")
	return nil
}
