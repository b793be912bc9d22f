package models

import "time"

// ProductionRecord is one operator entry in a section table. Descriptive item
// fields are denormalized from the matched Item at save time; weight and
// efficiency are derived server-side and stored rounded to 2 decimals.
//
// One physical table per section (flatteningsection, spiralsection, ...);
// always access through DB.Table(section.TableName).
type ProductionRecord struct {
	ID          uint   `gorm:"primaryKey"`
	SectionName string `gorm:"size:50;index;not null"`

	MachineID string `gorm:"size:50;index"`
	MachineNo string `gorm:"size:50"`

	ItemCode            string `gorm:"size:50;index;not null"`
	ItemName            string `gorm:"size:100"`
	MaterialType        string `gorm:"size:50"`
	RawMaterialSize     string `gorm:"size:50"`
	WireSize            string `gorm:"size:50"`
	FinishedProductName string `gorm:"size:100"`

	ProductionQuantity float64 `gorm:"not null"`
	PerMeterWt         float64
	Weight             float64 // = round2(quantity * per_meter_wt)
	TargetQty          float64
	UOM                string  `gorm:"size:20"`
	Efficiency         float64 // 0-100, policy-dependent
	EfficiencyStatus   string  `gorm:"size:30"`

	OperatorName string `gorm:"size:100"`
	UsersName    string `gorm:"size:100"`
	ShiftCode    string `gorm:"size:20;index"`
	ShiftName    string `gorm:"size:50"`
	Remarks      string `gorm:"size:255"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
