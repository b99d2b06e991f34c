package db

import "time"

// Lead is an enquiry from the public contact form. Rows are insert-only.
type Lead struct {
	ID          string    `gorm:"primaryKey;size:36"`
	CreatedAt   time.Time `gorm:"index"`
	FullName    string    `gorm:"column:full_name;not null"`
	Phone       string    `gorm:"not null"`
	UserType    string    `gorm:"column:user_type"`
	Requirement string    `gorm:"type:text"`
}

func (Lead) TableName() string {
	return "leads"
}
