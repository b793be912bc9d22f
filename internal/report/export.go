package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"wiretrack-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Export column order is fixed; downstream spreadsheets import by position.
var exportColumns = []string{
	"Date", "Machine No", "Item Code", "Item Name", "Material Type",
	"Shift", "Operator", "Quantity", "Per Meter Wt", "Weight",
	"Target Qty", "Efficiency", "Status", "Remarks",
}

func exportRow(r models.ProductionRecord) []any {
	return []any{
		r.CreatedAt.Format("2006-01-02"),
		r.MachineNo,
		r.ItemCode,
		r.ItemName,
		r.MaterialType,
		r.ShiftName,
		r.OperatorName,
		r.ProductionQuantity,
		r.PerMeterWt,
		r.Weight,
		r.TargetQty,
		r.Efficiency,
		r.EfficiencyStatus,
		r.Remarks,
	}
}

// csvField quotes text fields unconditionally (doubling inner quotes) and
// leaves numbers bare.
func csvField(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', 2, 64)
	case int:
		return strconv.Itoa(n)
	case string:
		return `"` + strings.ReplaceAll(n, `"`, `""`) + `"`
	default:
		return fmt.Sprintf("%v", n)
	}
}

// BuildCSV renders records in the fixed export column order.
func BuildCSV(records []models.ProductionRecord) string {
	var b strings.Builder

	header := make([]string, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = csvField(col)
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")

	for _, r := range records {
		row := exportRow(r)
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = csvField(v)
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// BuildXLSX renders the same rows as an Excel workbook.
func BuildXLSX(sheetName string, records []models.ProductionRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName != "" && sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, err
		}
	} else {
		sheetName = defaultSheet
	}

	header := make([]any, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := exportRow(r)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
