package db

import (
	"time"

	"gorm.io/datatypes"
)

// Page 对应 cms_pages 表，SEO 与区块以 JSON 列保存。
type Page struct {
	ID          string         `gorm:"primaryKey;size:36"`
	Slug        string         `gorm:"uniqueIndex;not null"`
	Template    string         `gorm:"size:32;not null"`
	Title       string         `gorm:"not null"`
	SEO         datatypes.JSON `gorm:"column:seo"`
	Sections    datatypes.JSON `gorm:"column:sections"`
	IsPublished bool           `gorm:"column:is_published"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the table name stable across renames of the struct.
func (Page) TableName() string {
	return "cms_pages"
}
