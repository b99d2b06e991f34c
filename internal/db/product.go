package db

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalogue row. List-valued fields are JSON columns.
type Product struct {
	ID           string         `gorm:"primaryKey;size:36"`
	Name         string         `gorm:"not null"`
	Category     string         `gorm:"size:32"`
	Description  string         `gorm:"type:text"`
	Features     datatypes.JSON `gorm:"column:features"`
	Specs        datatypes.JSON `gorm:"column:specs"`
	Image        string         `gorm:"type:text"`
	Applications datatypes.JSON `gorm:"column:applications"`
	IsFeatured   bool           `gorm:"column:is_featured"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Product) TableName() string {
	return "cms_products"
}
