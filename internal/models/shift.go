package models

import "time"

type Shift struct {
	ID        uint   `gorm:"primaryKey"`
	ShiftCode string `gorm:"size:20;uniqueIndex;not null"`
	ShiftName string `gorm:"size:50;not null"`
	StartTime string `gorm:"size:10"` // "06:00"
	EndTime   string `gorm:"size:10"` // "14:00"
	CreatedAt time.Time
	UpdatedAt time.Time
}
