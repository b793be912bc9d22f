package rawmaterial

import (
	"testing"
	"time"

	"wiretrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(createdAt time.Time, txType models.TransactionType, category string, qty, weight float64) models.RawMaterialLog {
	return models.RawMaterialLog{
		TransactionType: txType,
		Category:        category,
		Quantity:        qty,
		Weight:          weight,
		Status:          models.RawMaterialStatusActive,
		CreatedAt:       createdAt,
	}
}

func TestBuildOverview_Windows(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	logs := []models.RawMaterialLog{
		logAt(midnight, models.TransactionInward, "copper", 100, 25),            // today (exactly midnight)
		logAt(midnight.Add(-time.Minute), models.TransactionInward, "copper", 50, 10), // yesterday
		logAt(midnight.AddDate(0, 0, -10), models.TransactionOutward, "pvc", 30, 5),   // earlier this month
		logAt(midnight.AddDate(0, -2, 0), models.TransactionOutward, "pvc", 10, 2),    // previous month
	}

	ov := BuildOverview(logs, now)

	assert.Equal(t, 4, ov.TotalLogs)
	assert.Equal(t, 190.00, ov.TotalQuantity)
	assert.Equal(t, 42.00, ov.TotalWeight)

	assert.Equal(t, 1, ov.TodayCount)
	assert.Equal(t, 25.00, ov.TodayWeight)
	assert.Equal(t, 1, ov.YesterdayCount)
	assert.Equal(t, 10.00, ov.YesterdayWeight)
	assert.Equal(t, 3, ov.MonthCount)
	assert.Equal(t, 40.00, ov.MonthWeight)

	assert.Equal(t, 4, ov.StatusCounts["active"])
}

func TestBuildDashboard_Breakdowns(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)

	logs := []models.RawMaterialLog{
		logAt(now, models.TransactionInward, "copper", 100, 25),
		logAt(now, models.TransactionInward, "pvc", 200, 60),
		logAt(now, models.TransactionOutward, "copper", 50, 10),
		logAt(now, models.TransactionOutward, "", 10, 1),
	}

	dash := BuildDashboard(logs, now)

	require.Len(t, dash.ByTransactionType, 2)
	assert.Equal(t, "inward", dash.ByTransactionType[0].TransactionType)
	assert.Equal(t, 2, dash.ByTransactionType[0].Count)
	assert.Equal(t, 85.00, dash.ByTransactionType[0].TotalWeight)
	assert.Equal(t, "outward", dash.ByTransactionType[1].TransactionType)

	require.Len(t, dash.ByCategory, 3)
	// heaviest category first
	assert.Equal(t, "pvc", dash.ByCategory[0].Category)
	assert.Equal(t, "copper", dash.ByCategory[1].Category)
	assert.Equal(t, "(none)", dash.ByCategory[2].Category)
}

func TestBuildDashboard_SevenDaySeries(t *testing.T) {
	now := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
	todayStart := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	logs := []models.RawMaterialLog{
		logAt(todayStart.Add(2*time.Hour), models.TransactionInward, "copper", 100, 25),
		logAt(todayStart.AddDate(0, 0, -6), models.TransactionInward, "copper", 50, 10), // oldest bucket
		logAt(todayStart.AddDate(0, 0, -7), models.TransactionInward, "copper", 10, 3),  // outside
	}

	dash := BuildDashboard(logs, now)
	require.Len(t, dash.LastSevenDays, 7)

	assert.Equal(t, "2026-09-09", dash.LastSevenDays[0].Date)
	assert.Equal(t, "2026-09-15", dash.LastSevenDays[6].Date)

	assert.Equal(t, 10.00, dash.LastSevenDays[0].Weight)
	assert.Equal(t, 25.00, dash.LastSevenDays[6].Weight)

	var count int
	for _, p := range dash.LastSevenDays {
		count += p.Count
	}
	assert.Equal(t, 2, count)
}
