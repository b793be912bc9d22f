package refdata

import (
	"strings"

	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ItemRequest struct {
	ItemCode            string  `json:"item_code"`
	ItemName            string  `json:"item_name"`
	MaterialType        string  `json:"material_type"`
	RawMaterialSize     string  `json:"raw_material_size"`
	WireSize            string  `json:"wire_size"`
	FinishedProductName string  `json:"finished_product_name"`
	PerMeterWt          float64 `json:"per_meter_wt"`
	UOM                 string  `json:"uom"`
}

type TargetRequest struct {
	MachineID string  `json:"machine_id"`
	ShiftCode string  `json:"shift_code"`
	TargetQty float64 `json:"target_qty"`
	UOM       string  `json:"uom"`
}

type ShiftRequest struct {
	ShiftCode string `json:"shift_code"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TargetResponse struct {
	ID        uint    `json:"id"`
	MachineID string  `json:"machine_id"`
	ShiftCode string  `json:"shift_code"`
	TargetQty float64 `json:"target_qty"`
	UOM       string  `json:"uom"`
}

type ShiftResponse struct {
	ID        uint   `json:"id"`
	ShiftCode string `json:"shift_code"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func toTargetResponse(t models.Target) TargetResponse {
	return TargetResponse{
		ID:        t.ID,
		MachineID: t.MachineID,
		ShiftCode: t.ShiftCode,
		TargetQty: t.TargetQty,
		UOM:       t.UOM,
	}
}

func toShiftResponse(s models.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		ShiftCode: s.ShiftCode,
		ShiftName: s.ShiftName,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func itemTableParam(c *fiber.Ctx) (string, error) {
	table := c.Query("item_table", "items")
	if !ValidItemTable(table) {
		return "", fiber.NewError(fiber.StatusBadRequest, "item_table must be one of items, spiralitem, pvcitem")
	}
	return table, nil
}

// GET /api/lookup/item?item_code=&item_table=
func LookupItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := itemTableParam(c)
		if err != nil {
			return err
		}
		code := c.Query("item_code")
		if code == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_code is required")
		}

		item, err := ResolveItem(table, code)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item lookup failed")
		}
		return c.JSON(BuildItemLookup(code, item))
	}
}

// GET /api/lookup/target?machine_id=&shift_code=
func LookupTargetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		machineID := c.Query("machine_id")
		shiftCode := c.Query("shift_code")
		if machineID == "" || shiftCode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "machine_id and shift_code are required")
		}

		target, err := ResolveTarget(machineID, shiftCode)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Target lookup failed")
		}
		if target == nil {
			return c.JSON(fiber.Map{"found": false, "status": "Target not found"})
		}
		return c.JSON(fiber.Map{
			"found":      true,
			"machine_id": target.MachineID,
			"shift_code": target.ShiftCode,
			"target_qty": target.TargetQty,
			"uom":        target.UOM,
		})
	}
}

// GET /api/items?item_table=
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := itemTableParam(c)
		if err != nil {
			return err
		}
		var items []models.Item
		if err := database.DB.Table(table).Order("item_code asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list items")
		}
		res := make([]ItemLookup, 0, len(items))
		for i := range items {
			res = append(res, BuildItemLookup(items[i].ItemCode, &items[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/items?item_table=
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := itemTableParam(c)
		if err != nil {
			return err
		}
		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.ItemCode = strings.TrimSpace(body.ItemCode)
		body.ItemName = strings.TrimSpace(body.ItemName)
		if body.ItemCode == "" || body.ItemName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_code and item_name are required")
		}
		if body.PerMeterWt < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "per_meter_wt cannot be negative")
		}

		existing, err := ResolveItem(table, body.ItemCode)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item lookup failed")
		}
		if existing != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Item code already exists")
		}

		item := models.Item{
			ItemCode:            body.ItemCode,
			ItemName:            body.ItemName,
			MaterialType:        body.MaterialType,
			RawMaterialSize:     body.RawMaterialSize,
			WireSize:            body.WireSize,
			FinishedProductName: body.FinishedProductName,
			PerMeterWt:          body.PerMeterWt,
			UOM:                 body.UOM,
		}
		if err := database.DB.Table(table).Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create item")
		}
		return c.Status(fiber.StatusCreated).JSON(BuildItemLookup(item.ItemCode, &item))
	}
}

// PUT /api/admin/items/:id?item_table=
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := itemTableParam(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var item models.Item
		if err := database.DB.Table(table).First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}

		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.ItemCode = strings.TrimSpace(body.ItemCode)
		body.ItemName = strings.TrimSpace(body.ItemName)
		if body.ItemCode == "" || body.ItemName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "item_code and item_name are required")
		}

		item.ItemCode = body.ItemCode
		item.ItemName = body.ItemName
		item.MaterialType = body.MaterialType
		item.RawMaterialSize = body.RawMaterialSize
		item.WireSize = body.WireSize
		item.FinishedProductName = body.FinishedProductName
		item.PerMeterWt = body.PerMeterWt
		item.UOM = body.UOM

		if err := database.DB.Table(table).Where("id = ?", id).Updates(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update item")
		}
		return c.JSON(BuildItemLookup(item.ItemCode, &item))
	}
}

// DELETE /api/admin/items/:id?item_table=
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, err := itemTableParam(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}
		res := database.DB.Table(table).Where("id = ?", id).Delete(&models.Item{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete item")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Item not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/targets
func ListTargetsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var targets []models.Target
		if err := database.DB.Order("machine_id asc, shift_code asc").Find(&targets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list targets")
		}
		res := make([]TargetResponse, 0, len(targets))
		for _, t := range targets {
			res = append(res, toTargetResponse(t))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/targets
func CreateTargetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TargetRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.MachineID = strings.TrimSpace(body.MachineID)
		body.ShiftCode = strings.TrimSpace(body.ShiftCode)
		if body.MachineID == "" || body.ShiftCode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "machine_id and shift_code are required")
		}
		if body.TargetQty <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "target_qty must be positive")
		}

		target := models.Target{
			MachineID: body.MachineID,
			ShiftCode: body.ShiftCode,
			TargetQty: body.TargetQty,
			UOM:       body.UOM,
		}
		if err := database.DB.Create(&target).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Target for this machine and shift already exists")
		}
		return c.Status(fiber.StatusCreated).JSON(toTargetResponse(target))
	}
}

// PUT /api/admin/targets/:id
func UpdateTargetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}
		var target models.Target
		if err := database.DB.First(&target, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Target not found")
		}

		var body TargetRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.TargetQty <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "target_qty must be positive")
		}

		target.MachineID = strings.TrimSpace(body.MachineID)
		target.ShiftCode = strings.TrimSpace(body.ShiftCode)
		target.TargetQty = body.TargetQty
		target.UOM = body.UOM

		if err := database.DB.Save(&target).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update target")
		}
		return c.JSON(toTargetResponse(target))
	}
}

// DELETE /api/admin/targets/:id
func DeleteTargetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}
		res := database.DB.Delete(&models.Target{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete target")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Target not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/shifts
func ListShiftsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shifts []models.Shift
		if err := database.DB.Order("shift_code asc").Find(&shifts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list shifts")
		}
		res := make([]ShiftResponse, 0, len(shifts))
		for _, s := range shifts {
			res = append(res, toShiftResponse(s))
		}
		return c.JSON(res)
	}
}

// POST /api/admin/shifts
func CreateShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.ShiftCode = strings.TrimSpace(body.ShiftCode)
		body.ShiftName = strings.TrimSpace(body.ShiftName)
		if body.ShiftCode == "" || body.ShiftName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "shift_code and shift_name are required")
		}

		shift := models.Shift{
			ShiftCode: body.ShiftCode,
			ShiftName: body.ShiftName,
			StartTime: body.StartTime,
			EndTime:   body.EndTime,
		}
		if err := database.DB.Create(&shift).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Shift code already exists")
		}
		return c.Status(fiber.StatusCreated).JSON(toShiftResponse(shift))
	}
}

// PUT /api/admin/shifts/:id
func UpdateShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}
		var shift models.Shift
		if err := database.DB.First(&shift, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}

		var body ShiftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.ShiftCode = strings.TrimSpace(body.ShiftCode)
		body.ShiftName = strings.TrimSpace(body.ShiftName)
		if body.ShiftCode == "" || body.ShiftName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "shift_code and shift_name are required")
		}

		shift.ShiftCode = body.ShiftCode
		shift.ShiftName = body.ShiftName
		shift.StartTime = body.StartTime
		shift.EndTime = body.EndTime

		if err := database.DB.Save(&shift).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update shift")
		}
		return c.JSON(toShiftResponse(shift))
	}
}

// DELETE /api/admin/shifts/:id
func DeleteShiftHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}
		res := database.DB.Delete(&models.Shift{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete shift")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
