package production

import (
	"strings"

	"wiretrack-backend/internal/models"
)

// DraftRecord is an in-progress entry. It is a plain value: ApplyFieldChange
// and the Apply* helpers return updated copies with derived fields already
// recomputed, so the derivation can never drift from the inputs.
type DraftRecord struct {
	MachineID string
	MachineNo string

	ItemCode            string
	ItemName            string
	MaterialType        string
	RawMaterialSize     string
	WireSize            string
	FinishedProductName string

	ProductionQuantity float64
	PerMeterWt         float64

	TargetQty   float64
	TargetFound bool
	UOM         string

	OperatorName string
	ShiftCode    string
	ShiftName    string
	Remarks      string

	// derived
	Weight           float64
	Efficiency       float64
	EfficiencyStatus string
}

// Derive recomputes weight, efficiency and the status label from the current
// inputs. Calling it twice is a no-op: derivation reads inputs only.
func (d DraftRecord) Derive() DraftRecord {
	d.Weight = ComputeWeight(d.ProductionQuantity, d.PerMeterWt)
	if d.TargetFound {
		d.Efficiency = ComputeEfficiency(d.ProductionQuantity, d.TargetQty)
		d.EfficiencyStatus = EfficiencyStatus(d.ProductionQuantity, d.TargetQty)
	} else {
		d.Efficiency = 0
		d.EfficiencyStatus = StatusTargetNotFound
	}
	return d
}

// ApplyFieldChange sets one operator-editable field and rederives when the
// field participates in derivation.
func ApplyFieldChange(d DraftRecord, field string, value any) DraftRecord {
	switch field {
	case "production_quantity":
		if v, ok := toFloat(value); ok {
			d.ProductionQuantity = v
		}
	case "per_meter_wt":
		if v, ok := toFloat(value); ok {
			d.PerMeterWt = v
		}
	case "machine_id":
		// the resolved target keyed on the old machine no longer applies;
		// the caller must re-ApplyTarget
		d.MachineID = toString(value)
		d.TargetQty = 0
		d.TargetFound = false
	case "machine_no":
		d.MachineNo = toString(value)
	case "shift_code":
		d.ShiftCode = toString(value)
		d.TargetQty = 0
		d.TargetFound = false
	case "operator_name":
		d.OperatorName = toString(value)
	case "remarks":
		d.Remarks = toString(value)
	default:
		return d
	}
	return d.Derive()
}

// ApplyItem copies the matched item's descriptive fields onto the draft. A
// nil item clears them (the silent-fallback path).
func (d DraftRecord) ApplyItem(item *models.Item) DraftRecord {
	if item == nil {
		d.ItemName = ""
		d.MaterialType = ""
		d.RawMaterialSize = ""
		d.WireSize = ""
		d.FinishedProductName = ""
		d.PerMeterWt = 0
		return d.Derive()
	}
	d.ItemName = item.ItemName
	d.MaterialType = item.MaterialType
	d.RawMaterialSize = item.RawMaterialSize
	d.WireSize = item.WireSize
	d.FinishedProductName = item.FinishedProductName
	if d.PerMeterWt == 0 {
		d.PerMeterWt = item.PerMeterWt
	}
	return d.Derive()
}

// ApplyTarget records the resolved target (or its absence) and rederives.
func (d DraftRecord) ApplyTarget(target *models.Target) DraftRecord {
	if target == nil {
		d.TargetQty = 0
		d.TargetFound = false
		return d.Derive()
	}
	d.TargetQty = target.TargetQty
	d.TargetFound = true
	if d.UOM == "" {
		d.UOM = target.UOM
	}
	return d.Derive()
}

// ApplyShift copies the shift display name; no derivation inputs change.
func (d DraftRecord) ApplyShift(shift *models.Shift) DraftRecord {
	if shift == nil {
		d.ShiftName = ""
		return d
	}
	d.ShiftName = shift.ShiftName
	return d
}

// Record materializes the draft into a persistable row for a section.
func (d DraftRecord) Record(sectionName string) models.ProductionRecord {
	return models.ProductionRecord{
		SectionName:         sectionName,
		MachineID:           d.MachineID,
		MachineNo:           d.MachineNo,
		ItemCode:            d.ItemCode,
		ItemName:            d.ItemName,
		MaterialType:        d.MaterialType,
		RawMaterialSize:     d.RawMaterialSize,
		WireSize:            d.WireSize,
		FinishedProductName: d.FinishedProductName,
		ProductionQuantity:  d.ProductionQuantity,
		PerMeterWt:          d.PerMeterWt,
		Weight:              d.Weight,
		TargetQty:           d.TargetQty,
		UOM:                 d.UOM,
		Efficiency:          d.Efficiency,
		EfficiencyStatus:    d.EfficiencyStatus,
		OperatorName:        d.OperatorName,
		ShiftCode:           d.ShiftCode,
		ShiftName:           d.ShiftName,
		Remarks:             d.Remarks,
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
