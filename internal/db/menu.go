package db

import (
	"time"

	"gorm.io/datatypes"
)

// Menu stores one navigation menu, keyed by its name ("header" or "footer").
type Menu struct {
	Type      string         `gorm:"primaryKey;size:16"`
	Items     datatypes.JSON `gorm:"column:items"`
	UpdatedAt time.Time
}

func (Menu) TableName() string {
	return "cms_menus"
}
