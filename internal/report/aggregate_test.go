package report

import (
	"testing"
	"time"

	"wiretrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(item string, qty, weight, eff float64, createdAt time.Time) models.ProductionRecord {
	return models.ProductionRecord{
		ItemName:           item,
		ItemCode:           item,
		ProductionQuantity: qty,
		Weight:             weight,
		Efficiency:         eff,
		CreatedAt:          createdAt,
	}
}

func TestSummarize_GroupTotals(t *testing.T) {
	now := time.Now()
	records := []models.ProductionRecord{
		rec("A", 100, 25, 80, now),
		rec("A", 200, 50, 90, now),
		rec("B", 50, 10, 60, now),
	}

	keyFn, ok := GroupKeyFunc("item_name")
	require.True(t, ok)

	groups := Summarize(records, keyFn)
	require.Len(t, groups, 2)

	// descending total weight: A first
	assert.Equal(t, "A", groups[0].Key)
	assert.Equal(t, 300.00, groups[0].TotalQuantity)
	assert.Equal(t, 75.00, groups[0].TotalWeight)
	assert.Equal(t, 85.00, groups[0].AvgEfficiency) // mean of rows, not recomputed
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, "B", groups[1].Key)
	assert.Equal(t, 1, groups[1].Count)
}

func TestSummarize_PartitionPreservesTotals(t *testing.T) {
	now := time.Now()
	records := []models.ProductionRecord{
		rec("A", 10, 2.5, 10, now),
		rec("B", 20, 5.0, 20, now),
		rec("C", 30, 7.5, 30, now),
		rec("A", 40, 10.0, 40, now),
	}

	keyFn, _ := GroupKeyFunc("item_name")
	groups := Summarize(records, keyFn)

	var groupTotal, recordTotal float64
	for _, g := range groups {
		groupTotal += g.TotalWeight
	}
	for _, r := range records {
		recordTotal += r.Weight
	}
	assert.InDelta(t, recordTotal, groupTotal, 0.001)
}

func TestSummarize_EmptyKeyBucket(t *testing.T) {
	groups := Summarize([]models.ProductionRecord{rec("", 10, 5, 50, time.Now())}, func(r models.ProductionRecord) string { return r.ItemName })
	require.Len(t, groups, 1)
	assert.Equal(t, "(none)", groups[0].Key)
}

func TestGroupKeyFunc_Unknown(t *testing.T) {
	_, ok := GroupKeyFunc("operator_shoe_size")
	assert.False(t, ok)
}

func TestDailyTotals_MidnightBelongsToToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	records := []models.ProductionRecord{
		rec("A", 100, 25, 80, midnight),
		rec("B", 50, 10, 60, midnight.Add(-time.Second)), // yesterday 23:59:59
	}

	today, yesterday := DailyTotals(records, now)
	assert.Equal(t, 1, today.Count)
	assert.Equal(t, 25.00, today.TotalWeight)
	assert.Equal(t, 1, yesterday.Count)
	assert.Equal(t, 10.00, yesterday.TotalWeight)
}

func TestWeeklyBuckets(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	records := []models.ProductionRecord{
		rec("A", 100, 25, 80, now),                      // today
		rec("B", 200, 50, 90, now.AddDate(0, 0, -6)),    // oldest bucket
		rec("C", 300, 75, 70, now.AddDate(0, 0, -7)),    // outside the window
	}

	buckets := WeeklyBuckets(records, now)
	require.Len(t, buckets, 7)

	// oldest first
	assert.Equal(t, "2026-08-26", buckets[0].Date)
	assert.Equal(t, "2026-09-01", buckets[6].Date)

	assert.Equal(t, 50.00, buckets[0].TotalWeight)
	assert.Equal(t, 25.00, buckets[6].TotalWeight)

	var total int
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 2, total)
}

func TestTopItems(t *testing.T) {
	now := time.Now()
	records := []models.ProductionRecord{
		rec("A", 1, 10, 0, now),
		rec("B", 1, 30, 0, now),
		rec("C", 1, 20, 0, now),
		rec("D", 1, 5, 0, now),
	}

	top := TopItems(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Key)
	assert.Equal(t, "C", top[1].Key)
}
