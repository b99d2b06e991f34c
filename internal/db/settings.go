package db

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsRowID is the key of the single settings row.
const SettingsRowID = "global"

// Settings 存储站点全局配置，表中最多只有一行。
type Settings struct {
	ID           string         `gorm:"primaryKey;size:16"`
	SiteName     string         `gorm:"column:site_name"`
	Phone        string
	Email        string
	Address      string
	WhatsApp     string         `gorm:"column:whatsapp"`
	Integrations datatypes.JSON `gorm:"column:integrations"`
	UpdatedAt    time.Time
}

func (Settings) TableName() string {
	return "cms_settings"
}
