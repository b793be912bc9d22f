package report

import (
	"sort"

	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"
)

// UnitNote flags the long-standing quirk of this ledger: inflow sums the
// flattening quantity column while outflow sums the spiral weight column.
// The subtraction is kept as-is until the units are reconciled upstream.
const UnitNote = "total_in sums flattening production_quantity; total_out sums spiral weight"

const (
	AvailabilityAvailable = "Available"
	AvailabilityDeficit   = "Deficit"
)

type LedgerRow struct {
	ItemCode       string  `json:"item_code"`
	ItemName       string  `json:"item_name"`
	TotalIn        float64 `json:"total_in"`
	TotalOut       float64 `json:"total_out"`
	ClosingBalance float64 `json:"closing_balance"`
	Availability   string  `json:"availability"`
}

// BuildLedger reconciles the flattening stage against the spiral stage per
// item_code: closing_balance = sum(flattening quantity) - sum(spiral weight).
// Rows come back in descending closing balance.
func BuildLedger(flattening, spiral []models.ProductionRecord) []LedgerRow {
	rows := map[string]*LedgerRow{}

	get := func(code, name string) *LedgerRow {
		row, ok := rows[code]
		if !ok {
			row = &LedgerRow{ItemCode: code}
			rows[code] = row
		}
		if row.ItemName == "" && name != "" {
			row.ItemName = name
		}
		return row
	}

	for _, r := range flattening {
		get(r.ItemCode, r.ItemName).TotalIn += r.ProductionQuantity
	}
	for _, r := range spiral {
		get(r.ItemCode, r.ItemName).TotalOut += r.Weight
	}

	out := make([]LedgerRow, 0, len(rows))
	for _, row := range rows {
		row.TotalIn = production.Round2(row.TotalIn)
		row.TotalOut = production.Round2(row.TotalOut)
		row.ClosingBalance = production.Round2(row.TotalIn - row.TotalOut)
		if row.ClosingBalance >= 0 {
			row.Availability = AvailabilityAvailable
		} else {
			row.Availability = AvailabilityDeficit
		}
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ClosingBalance != out[j].ClosingBalance {
			return out[i].ClosingBalance > out[j].ClosingBalance
		}
		return out[i].ItemCode < out[j].ItemCode
	})
	return out
}

// SortForInventory orders ledger rows for the inventory report: every
// Available row before every Deficit row, each sub-group by descending
// balance.
func SortForInventory(rows []LedgerRow) []LedgerRow {
	out := make([]LedgerRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Availability != out[j].Availability {
			return out[i].Availability == AvailabilityAvailable
		}
		if out[i].ClosingBalance != out[j].ClosingBalance {
			return out[i].ClosingBalance > out[j].ClosingBalance
		}
		return out[i].ItemCode < out[j].ItemCode
	})
	return out
}
