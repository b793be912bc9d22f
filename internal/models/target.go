package models

import "time"

// Target is the expected production quantity for one machine+shift
// combination, the denominator of every efficiency number.
type Target struct {
	ID        uint   `gorm:"primaryKey"`
	MachineID string `gorm:"size:50;not null;uniqueIndex:idx_targets_machine_shift"`
	ShiftCode string `gorm:"size:20;not null;uniqueIndex:idx_targets_machine_shift"`
	TargetQty float64 `gorm:"not null"`
	UOM       string  `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
