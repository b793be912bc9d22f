package refdata

import (
	"errors"
	"strings"

	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"

	"gorm.io/gorm"
)

// ResolveItem matches an item_code against one of the item master tables.
// Returns (nil, nil) when nothing matches; the caller decides whether that is
// an error. Matching is exact string equality, no normalization.
func ResolveItem(itemTable, itemCode string) (*models.Item, error) {
	var item models.Item
	err := database.DB.Table(itemTable).Where("item_code = ?", itemCode).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ResolveTarget matches (machine_id, shift_code). Inputs are trimmed before
// comparison; stored values are trimmed at write time.
func ResolveTarget(machineID, shiftCode string) (*models.Target, error) {
	var target models.Target
	err := database.DB.
		Where("machine_id = ? AND shift_code = ?", strings.TrimSpace(machineID), strings.TrimSpace(shiftCode)).
		First(&target).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

func ResolveShift(shiftCode string) (*models.Shift, error) {
	var shift models.Shift
	err := database.DB.Where("shift_code = ?", shiftCode).First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// ItemLookup is the wire shape of GET /api/lookup/item. A miss returns every
// field empty with Found=false instead of an error; submission screens treat
// the miss as advisory.
type ItemLookup struct {
	Found               bool    `json:"found"`
	ItemCode            string  `json:"item_code"`
	ItemName            string  `json:"item_name"`
	MaterialType        string  `json:"material_type"`
	RawMaterialSize     string  `json:"raw_material_size"`
	WireSize            string  `json:"wire_size"`
	FinishedProductName string  `json:"finished_product_name"`
	PerMeterWt          float64 `json:"per_meter_wt"`
	UOM                 string  `json:"uom"`
}

func BuildItemLookup(itemCode string, item *models.Item) ItemLookup {
	if item == nil {
		return ItemLookup{ItemCode: itemCode}
	}
	return ItemLookup{
		Found:               true,
		ItemCode:            item.ItemCode,
		ItemName:            item.ItemName,
		MaterialType:        item.MaterialType,
		RawMaterialSize:     item.RawMaterialSize,
		WireSize:            item.WireSize,
		FinishedProductName: item.FinishedProductName,
		PerMeterWt:          item.PerMeterWt,
		UOM:                 item.UOM,
	}
}

var itemTables = map[string]bool{
	"items":      true,
	"spiralitem": true,
	"pvcitem":    true,
}

// ValidItemTable guards the item_table query parameter; table names reach SQL.
func ValidItemTable(name string) bool {
	return itemTables[name]
}
