package entity

import (
	"time"
)

type Category struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"size:500" json:"description"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// deletion is blocked at the API layer while items exist
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
