package report

import (
	"strings"
	"testing"
	"time"

	"wiretrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV_HeaderAndQuoting(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	records := []models.ProductionRecord{
		{
			MachineNo:          "M-01",
			ItemCode:           "FL-100",
			ItemName:           `Flat "special" wire`,
			MaterialType:       "GI",
			ShiftName:          "Morning",
			OperatorName:       "Ravi",
			ProductionQuantity: 100,
			PerMeterWt:         0.25,
			Weight:             25,
			TargetQty:          10000,
			Efficiency:         1,
			EfficiencyStatus:   "Low",
			Remarks:            "ok, fine",
			CreatedAt:          created,
		},
	}

	out := BuildCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Date","Machine No","Item Code","Item Name","Material Type","Shift","Operator","Quantity","Per Meter Wt","Weight","Target Qty","Efficiency","Status","Remarks"`, lines[0])

	// text fields quoted (inner quotes doubled), numbers bare with 2 decimals
	assert.Contains(t, lines[1], `"Flat ""special"" wire"`)
	assert.Contains(t, lines[1], `"ok, fine"`)
	assert.Contains(t, lines[1], "100.00,0.25,25.00,10000.00,1.00")
	assert.True(t, strings.HasPrefix(lines[1], `"2026-09-01",`))
}

func TestBuildCSV_Empty(t *testing.T) {
	out := BuildCSV(nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestBuildXLSX(t *testing.T) {
	records := []models.ProductionRecord{
		{ItemCode: "FL-100", ItemName: "Flat Wire", Weight: 25, CreatedAt: time.Now()},
	}

	buf, err := BuildXLSX("Flattening Section", records)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
