package db

import "time"

// Media 保存媒体库条目，URL 可能是外链也可能是内联的 data URL。
type Media struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string
	Type      string `gorm:"size:16"`
	URL       string `gorm:"column:url;type:text"`
	CreatedAt time.Time
}

func (Media) TableName() string {
	return "cms_media"
}
