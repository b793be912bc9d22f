package report

import (
	"sort"
	"time"

	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"
)

type GroupSummary struct {
	Key           string  `json:"key"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalWeight   float64 `json:"total_weight"`
	AvgEfficiency float64 `json:"avg_efficiency"`
	Count         int     `json:"count"`
}

// GroupKeyFunc maps a group_by parameter to a key extractor. Day grouping
// buckets by the record's local calendar day.
func GroupKeyFunc(groupBy string) (func(models.ProductionRecord) string, bool) {
	switch groupBy {
	case "item_name":
		return func(r models.ProductionRecord) string { return r.ItemName }, true
	case "material_type":
		return func(r models.ProductionRecord) string { return r.MaterialType }, true
	case "finished_product_name":
		return func(r models.ProductionRecord) string { return r.FinishedProductName }, true
	case "machine_no":
		return func(r models.ProductionRecord) string { return r.MachineNo }, true
	case "shift_name":
		return func(r models.ProductionRecord) string { return r.ShiftName }, true
	case "day":
		return func(r models.ProductionRecord) string { return r.CreatedAt.Format("2006-01-02") }, true
	}
	return nil, false
}

// Summarize groups records by key and returns per-group totals. Efficiency is
// the arithmetic mean of the stored per-row values, not a recomputation from
// group totals. Groups are ordered by descending total weight.
func Summarize(records []models.ProductionRecord, keyFn func(models.ProductionRecord) string) []GroupSummary {
	agg := map[string]*GroupSummary{}
	effSums := map[string]float64{}

	for _, r := range records {
		key := keyFn(r)
		if key == "" {
			key = "(none)"
		}
		g, ok := agg[key]
		if !ok {
			g = &GroupSummary{Key: key}
			agg[key] = g
		}
		g.TotalQuantity += r.ProductionQuantity
		g.TotalWeight += r.Weight
		g.Count++
		effSums[key] += r.Efficiency
	}

	out := make([]GroupSummary, 0, len(agg))
	for key, g := range agg {
		g.TotalQuantity = production.Round2(g.TotalQuantity)
		g.TotalWeight = production.Round2(g.TotalWeight)
		g.AvgEfficiency = production.Round2(effSums[key] / float64(g.Count))
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalWeight != out[j].TotalWeight {
			return out[i].TotalWeight > out[j].TotalWeight
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// DayWindow returns [midnight, next midnight) for t's local day. A record
// created exactly at midnight belongs to that day.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

type DayTotals struct {
	Date          string  `json:"date"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalWeight   float64 `json:"total_weight"`
	AvgEfficiency float64 `json:"avg_efficiency"`
	Count         int     `json:"count"`
}

func totalsFor(records []models.ProductionRecord, start, end time.Time) DayTotals {
	t := DayTotals{Date: start.Format("2006-01-02")}
	var effSum float64
	for _, r := range records {
		if inWindow(r.CreatedAt, start, end) {
			t.TotalQuantity += r.ProductionQuantity
			t.TotalWeight += r.Weight
			effSum += r.Efficiency
			t.Count++
		}
	}
	t.TotalQuantity = production.Round2(t.TotalQuantity)
	t.TotalWeight = production.Round2(t.TotalWeight)
	if t.Count > 0 {
		t.AvgEfficiency = production.Round2(effSum / float64(t.Count))
	}
	return t
}

// DailyTotals returns today's and yesterday's totals.
func DailyTotals(records []models.ProductionRecord, now time.Time) (DayTotals, DayTotals) {
	todayStart, tomorrowStart := DayWindow(now)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	return totalsFor(records, todayStart, tomorrowStart), totalsFor(records, yesterdayStart, todayStart)
}

// WeeklyBuckets returns seven single-day buckets including today, oldest
// first.
func WeeklyBuckets(records []models.ProductionRecord, now time.Time) []DayTotals {
	todayStart, _ := DayWindow(now)
	out := make([]DayTotals, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		start := todayStart.AddDate(0, 0, -offset)
		out = append(out, totalsFor(records, start, start.AddDate(0, 0, 1)))
	}
	return out
}

// TopItems returns the heaviest item groups, descending by total weight.
func TopItems(records []models.ProductionRecord, limit int) []GroupSummary {
	keyFn, _ := GroupKeyFunc("item_name")
	groups := Summarize(records, keyFn)
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}
