package models

import "time"

// Item is the reference master a production entry copies its descriptive
// fields from. The same struct backs three physical tables (items, spiralitem,
// pvcitem); always access it through DB.Table(...) with the section's item
// table.
type Item struct {
	ID                  uint   `gorm:"primaryKey"`
	ItemCode            string `gorm:"size:50;not null;index"`
	ItemName            string `gorm:"size:100;not null"`
	MaterialType        string `gorm:"size:50"`
	RawMaterialSize     string `gorm:"size:50"`
	WireSize            string `gorm:"size:50"`
	FinishedProductName string `gorm:"size:100"`
	PerMeterWt          float64
	UOM                 string `gorm:"size:20"` // kg, mtr, pcs
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
