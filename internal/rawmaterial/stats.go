package rawmaterial

import (
	"sort"
	"time"

	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"
)

// Stats are assembled in memory from the full log list. Volumes here are a
// few thousand rows a month; one scan keeps the window logic testable.

type Overview struct {
	TotalLogs       int            `json:"total_logs"`
	TotalQuantity   float64        `json:"total_quantity"`
	TotalWeight     float64        `json:"total_weight"`
	StatusCounts    map[string]int `json:"status_counts"`
	TodayCount      int            `json:"today_count"`
	TodayWeight     float64        `json:"today_weight"`
	YesterdayCount  int            `json:"yesterday_count"`
	YesterdayWeight float64        `json:"yesterday_weight"`
	MonthCount      int            `json:"this_month_count"`
	MonthWeight     float64        `json:"this_month_weight"`
}

type TypeBreakdown struct {
	TransactionType string  `json:"transaction_type"`
	Count           int     `json:"count"`
	TotalQuantity   float64 `json:"total_quantity"`
	TotalWeight     float64 `json:"total_weight"`
}

type CategoryBreakdown struct {
	Category      string  `json:"category"`
	Count         int     `json:"count"`
	TotalQuantity float64 `json:"total_quantity"`
	TotalWeight   float64 `json:"total_weight"`
}

type DayPoint struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

type Dashboard struct {
	ByTransactionType []TypeBreakdown     `json:"by_transaction_type"`
	ByCategory        []CategoryBreakdown `json:"by_category"`
	LastSevenDays     []DayPoint          `json:"last_seven_days"`
}

// dayStart truncates to local midnight. A record created exactly at midnight
// belongs to that day, not the one before.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func BuildOverview(logs []models.RawMaterialLog, now time.Time) Overview {
	todayStart := dayStart(now)
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	ov := Overview{StatusCounts: map[string]int{}}
	for _, l := range logs {
		ov.TotalLogs++
		ov.TotalQuantity += l.Quantity
		ov.TotalWeight += l.Weight
		ov.StatusCounts[string(l.Status)]++

		if within(l.CreatedAt, todayStart, tomorrowStart) {
			ov.TodayCount++
			ov.TodayWeight += l.Weight
		}
		if within(l.CreatedAt, yesterdayStart, todayStart) {
			ov.YesterdayCount++
			ov.YesterdayWeight += l.Weight
		}
		if within(l.CreatedAt, monthStart, tomorrowStart) {
			ov.MonthCount++
			ov.MonthWeight += l.Weight
		}
	}
	ov.TotalQuantity = production.Round2(ov.TotalQuantity)
	ov.TotalWeight = production.Round2(ov.TotalWeight)
	ov.TodayWeight = production.Round2(ov.TodayWeight)
	ov.YesterdayWeight = production.Round2(ov.YesterdayWeight)
	ov.MonthWeight = production.Round2(ov.MonthWeight)
	return ov
}

func BuildDashboard(logs []models.RawMaterialLog, now time.Time) Dashboard {
	typeAgg := map[string]*TypeBreakdown{}
	catAgg := map[string]*CategoryBreakdown{}

	for _, l := range logs {
		tb, ok := typeAgg[string(l.TransactionType)]
		if !ok {
			tb = &TypeBreakdown{TransactionType: string(l.TransactionType)}
			typeAgg[string(l.TransactionType)] = tb
		}
		tb.Count++
		tb.TotalQuantity += l.Quantity
		tb.TotalWeight += l.Weight

		cat := l.Category
		if cat == "" {
			cat = "(none)"
		}
		cb, ok := catAgg[cat]
		if !ok {
			cb = &CategoryBreakdown{Category: cat}
			catAgg[cat] = cb
		}
		cb.Count++
		cb.TotalQuantity += l.Quantity
		cb.TotalWeight += l.Weight
	}

	dash := Dashboard{
		ByTransactionType: make([]TypeBreakdown, 0, len(typeAgg)),
		ByCategory:        make([]CategoryBreakdown, 0, len(catAgg)),
	}
	for _, t := range []models.TransactionType{models.TransactionInward, models.TransactionOutward} {
		if tb, ok := typeAgg[string(t)]; ok {
			tb.TotalQuantity = production.Round2(tb.TotalQuantity)
			tb.TotalWeight = production.Round2(tb.TotalWeight)
			dash.ByTransactionType = append(dash.ByTransactionType, *tb)
		}
	}
	for _, cb := range catAgg {
		cb.TotalQuantity = production.Round2(cb.TotalQuantity)
		cb.TotalWeight = production.Round2(cb.TotalWeight)
		dash.ByCategory = append(dash.ByCategory, *cb)
	}
	// heaviest categories first
	sort.Slice(dash.ByCategory, func(i, j int) bool {
		if dash.ByCategory[i].TotalWeight != dash.ByCategory[j].TotalWeight {
			return dash.ByCategory[i].TotalWeight > dash.ByCategory[j].TotalWeight
		}
		return dash.ByCategory[i].Category < dash.ByCategory[j].Category
	})

	// seven single-day buckets including today, oldest first
	todayStart := dayStart(now)
	for offset := 6; offset >= 0; offset-- {
		start := todayStart.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 1)
		point := DayPoint{Date: start.Format("2006-01-02")}
		for _, l := range logs {
			if within(l.CreatedAt, start, end) {
				point.Count++
				point.Weight += l.Weight
			}
		}
		point.Weight = production.Round2(point.Weight)
		dash.LastSevenDays = append(dash.LastSevenDays, point)
	}

	return dash
}
