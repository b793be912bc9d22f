package models

import "time"

type RawMaterialStatus string

const (
	RawMaterialStatusActive    RawMaterialStatus = "active"
	RawMaterialStatusCompleted RawMaterialStatus = "completed"
	RawMaterialStatusCancelled RawMaterialStatus = "cancelled"
	RawMaterialStatusOnHold    RawMaterialStatus = "on_hold"
	RawMaterialStatusPending   RawMaterialStatus = "pending"
)

type TransactionType string

const (
	TransactionInward  TransactionType = "inward"
	TransactionOutward TransactionType = "outward"
)

// RawMaterialLog is one gate-pass voucher at the raw material store. GatePass
// is the external voucher number and must stay unique across all records.
type RawMaterialLog struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	GatePass        string            `gorm:"size:50;uniqueIndex;not null" json:"gate_pass"`
	TransactionType TransactionType   `gorm:"size:20;index;not null" json:"transaction_type"`
	Category        string            `gorm:"size:50;index" json:"category"`
	ItemCode        string            `gorm:"size:50" json:"item_code"`
	WireSize        string            `gorm:"size:50" json:"wire_size"`
	Quantity        float64           `gorm:"not null" json:"quantity"`
	PerMeterWt      float64           `json:"per_meter_wt"`
	Weight          float64           `json:"weight"`
	UOM             string            `gorm:"size:20" json:"uom"`
	SupplierName    string            `gorm:"size:100" json:"supplier_name"`
	VehicleNo       string            `gorm:"size:30" json:"vehicle_no"`
	OperatorName    string            `gorm:"size:100" json:"operator_name"`
	Remarks         string            `gorm:"size:255" json:"remarks"`
	Reason          string            `gorm:"size:255" json:"reason"`
	Status          RawMaterialStatus `gorm:"size:20;index;default:active" json:"status"`
	CreatedAt       time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
