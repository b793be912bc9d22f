package production

import (
	"testing"

	"wiretrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyFieldChange_RecomputesDerived(t *testing.T) {
	d := DraftRecord{TargetQty: 10000, TargetFound: true}

	d = ApplyFieldChange(d, "production_quantity", 100.0)
	d = ApplyFieldChange(d, "per_meter_wt", 0.25)

	assert.Equal(t, 25.00, d.Weight)
	assert.Equal(t, 1.00, d.Efficiency)

	d = ApplyFieldChange(d, "production_quantity", 8000.0)
	assert.Equal(t, 2000.00, d.Weight)
	assert.Equal(t, 80.00, d.Efficiency)
	assert.Equal(t, StatusGood, d.EfficiencyStatus)
}

func TestApplyFieldChange_UnknownFieldIsNoop(t *testing.T) {
	d := DraftRecord{ProductionQuantity: 100, PerMeterWt: 0.25}.Derive()
	got := ApplyFieldChange(d, "color", "blue")
	assert.Equal(t, d, got)
}

func TestApplyFieldChange_TrimsStrings(t *testing.T) {
	d := ApplyFieldChange(DraftRecord{}, "machine_id", "  M-01 ")
	assert.Equal(t, "M-01", d.MachineID)
}

func TestApplyFieldChange_MachineChangeInvalidatesTarget(t *testing.T) {
	d := DraftRecord{MachineID: "M-01", ProductionQuantity: 8000, TargetQty: 10000, TargetFound: true}.Derive()
	assert.Equal(t, 80.00, d.Efficiency)

	d = ApplyFieldChange(d, "machine_id", "M-02")
	assert.False(t, d.TargetFound)
	assert.Equal(t, 0.0, d.Efficiency)
	assert.Equal(t, StatusTargetNotFound, d.EfficiencyStatus)

	// re-resolution restores the derivation
	d = d.ApplyTarget(&models.Target{MachineID: "M-02", ShiftCode: "A", TargetQty: 16000})
	assert.Equal(t, 50.00, d.Efficiency)
}

func TestApplyFieldChange_ShiftChangeInvalidatesTarget(t *testing.T) {
	d := DraftRecord{ShiftCode: "A", ProductionQuantity: 8000, TargetQty: 10000, TargetFound: true}.Derive()

	d = ApplyFieldChange(d, "shift_code", "B")
	assert.False(t, d.TargetFound)
	assert.Equal(t, 0.0, d.Efficiency)
	assert.Equal(t, StatusTargetNotFound, d.EfficiencyStatus)
}

func TestApplyItem_CopiesDescriptiveFields(t *testing.T) {
	item := &models.Item{
		ItemCode:     "FL-100",
		ItemName:     "Flat Wire 100",
		MaterialType: "GI",
		WireSize:     "1.2mm",
		PerMeterWt:   0.25,
	}

	d := DraftRecord{ItemCode: "FL-100", ProductionQuantity: 100}.ApplyItem(item)

	assert.Equal(t, "Flat Wire 100", d.ItemName)
	assert.Equal(t, "GI", d.MaterialType)
	assert.Equal(t, 0.25, d.PerMeterWt)
	assert.Equal(t, 25.00, d.Weight)
}

func TestApplyItem_OperatorOverrideWins(t *testing.T) {
	item := &models.Item{ItemCode: "FL-100", ItemName: "Flat Wire 100", PerMeterWt: 0.25}

	d := DraftRecord{ProductionQuantity: 100, PerMeterWt: 0.3}.ApplyItem(item)
	assert.Equal(t, 0.3, d.PerMeterWt)
	assert.Equal(t, 30.00, d.Weight)
}

func TestApplyItem_NilClearsFields(t *testing.T) {
	d := DraftRecord{
		ItemName:           "Flat Wire 100",
		MaterialType:       "GI",
		PerMeterWt:         0.25,
		ProductionQuantity: 100,
	}.ApplyItem(nil)

	assert.Empty(t, d.ItemName)
	assert.Empty(t, d.MaterialType)
	assert.Equal(t, 0.0, d.PerMeterWt)
	assert.Equal(t, 0.0, d.Weight)
}

func TestApplyTarget(t *testing.T) {
	target := &models.Target{MachineID: "M-01", ShiftCode: "A", TargetQty: 10000, UOM: "mtr"}

	d := DraftRecord{ProductionQuantity: 8000}.ApplyTarget(target)
	assert.True(t, d.TargetFound)
	assert.Equal(t, 80.00, d.Efficiency)
	assert.Equal(t, "mtr", d.UOM)
}

func TestApplyTarget_NilReportsNotFound(t *testing.T) {
	d := DraftRecord{ProductionQuantity: 8000, TargetQty: 10000, TargetFound: true}.ApplyTarget(nil)
	assert.False(t, d.TargetFound)
	assert.Equal(t, 0.0, d.Efficiency)
	assert.Equal(t, StatusTargetNotFound, d.EfficiencyStatus)
}

func TestDerive_Idempotent(t *testing.T) {
	d := DraftRecord{ProductionQuantity: 123.45, PerMeterWt: 0.678, TargetQty: 9000, TargetFound: true}.Derive()
	assert.Equal(t, d, d.Derive())
}

func TestRecord_CarriesDerivedValues(t *testing.T) {
	d := DraftRecord{
		MachineID:          "M-01",
		ItemCode:           "FL-100",
		ProductionQuantity: 100,
		PerMeterWt:         0.25,
		TargetQty:          10000,
		TargetFound:        true,
	}.Derive()

	r := d.Record("flattening")
	assert.Equal(t, "flattening", r.SectionName)
	assert.Equal(t, 25.00, r.Weight)
	assert.Equal(t, 1.00, r.Efficiency)
}
