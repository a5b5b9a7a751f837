package entity

import (
	"time"
)

type MenuItem struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"size:200;not null;uniqueIndex:idx_items_name_category" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	CategoryID uint     `gorm:"not null;uniqueIndex:idx_items_name_category" json:"category_id"`
	Category   Category `json:"-"` // preload on detail endpoints

	ImageURL        string `gorm:"size:500" json:"image_url"`
	Calories        int    `json:"calories"`
	PreparationTime int    `json:"preparation_time"`

	IsVegetarian bool `gorm:"not null;default:false" json:"is_vegetarian"`
	IsVegan      bool `gorm:"not null;default:false" json:"is_vegan"`
	IsGlutenFree bool `gorm:"not null;default:false" json:"is_gluten_free"`
	IsAvailable  bool `gorm:"not null;default:true" json:"is_available"`
	IsFeatured   bool `gorm:"not null;default:false" json:"is_featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy *uint `json:"created_by"`
	Creator   *User `gorm:"foreignKey:CreatedBy" json:"-"`
}
