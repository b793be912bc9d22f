package production

import (
	"fmt"
	"strings"
	"time"

	"wiretrack-backend/internal/audit"
	"wiretrack-backend/internal/auth"
	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/refdata"

	"github.com/gofiber/fiber/v2"
)

type CreateRecordRequest struct {
	MachineID          string   `json:"machine_id"`
	MachineNo          string   `json:"machine_no"`
	ItemCode           string   `json:"item_code"`
	ProductionQuantity float64  `json:"production_quantity"`
	PerMeterWt         *float64 `json:"per_meter_wt"` // overrides the item's value when set
	OperatorName       string   `json:"operator_name"`
	ShiftCode          string   `json:"shift_code"`
	Remarks            string   `json:"remarks"`
}

type BatchEntry struct {
	ItemCode           string   `json:"item_code"`
	ProductionQuantity float64  `json:"production_quantity"`
	PerMeterWt         *float64 `json:"per_meter_wt"`
	Remarks            string   `json:"remarks"`
}

type BatchCreateRequest struct {
	MachineID    string       `json:"machine_id"`
	MachineNo    string       `json:"machine_no"`
	ShiftCode    string       `json:"shift_code"`
	OperatorName string       `json:"operator_name"`
	Entries      []BatchEntry `json:"entries"`
}

type RecordResponse struct {
	ID                  uint    `json:"id"`
	SectionName         string  `json:"section_name"`
	MachineID           string  `json:"machine_id"`
	MachineNo           string  `json:"machine_no"`
	ItemCode            string  `json:"item_code"`
	ItemName            string  `json:"item_name"`
	MaterialType        string  `json:"material_type"`
	RawMaterialSize     string  `json:"raw_material_size"`
	WireSize            string  `json:"wire_size"`
	FinishedProductName string  `json:"finished_product_name"`
	ProductionQuantity  float64 `json:"production_quantity"`
	PerMeterWt          float64 `json:"per_meter_wt"`
	Weight              float64 `json:"weight"`
	TargetQty           float64 `json:"target_qty"`
	UOM                 string  `json:"uom"`
	Efficiency          float64 `json:"efficiency"`
	EfficiencyStatus    string  `json:"efficiency_status"`
	OperatorName        string  `json:"operator_name"`
	UsersName           string  `json:"users_name"`
	ShiftCode           string  `json:"shift_code"`
	ShiftName           string  `json:"shift_name"`
	Remarks             string  `json:"remarks"`
	CreatedAt           string  `json:"created_at"`
}

func toResponse(r models.ProductionRecord) RecordResponse {
	return RecordResponse{
		ID:                  r.ID,
		SectionName:         r.SectionName,
		MachineID:           r.MachineID,
		MachineNo:           r.MachineNo,
		ItemCode:            r.ItemCode,
		ItemName:            r.ItemName,
		MaterialType:        r.MaterialType,
		RawMaterialSize:     r.RawMaterialSize,
		WireSize:            r.WireSize,
		FinishedProductName: r.FinishedProductName,
		ProductionQuantity:  r.ProductionQuantity,
		PerMeterWt:          r.PerMeterWt,
		Weight:              r.Weight,
		TargetQty:           r.TargetQty,
		UOM:                 r.UOM,
		Efficiency:          r.Efficiency,
		EfficiencyStatus:    r.EfficiencyStatus,
		OperatorName:        r.OperatorName,
		UsersName:           r.UsersName,
		ShiftCode:           r.ShiftCode,
		ShiftName:           r.ShiftName,
		Remarks:             r.Remarks,
		CreatedAt:           r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func sectionFromParams(c *fiber.Ctx) (SectionConfig, error) {
	cfg, ok := SectionByKey(c.Params("section"))
	if !ok {
		return SectionConfig{}, fiber.NewError(fiber.StatusNotFound, "Unknown section")
	}
	return cfg, nil
}

// buildDraft resolves references and derives fields for one entry. The item
// must resolve; the target is advisory (efficiency 0, "Target not found").
func buildDraft(cfg SectionConfig, machineID, machineNo, shiftCode, operatorName, itemCode string, quantity float64, perMeterWt *float64, remarks string) (DraftRecord, error) {
	if quantity <= 0 {
		return DraftRecord{}, fiber.NewError(fiber.StatusBadRequest, "production_quantity must be positive")
	}
	if cfg.RequireRemarks && strings.TrimSpace(remarks) == "" {
		return DraftRecord{}, fiber.NewError(fiber.StatusBadRequest, "remarks are required for this section")
	}

	item, err := refdata.ResolveItem(cfg.ItemTable, itemCode)
	if err != nil {
		return DraftRecord{}, fiber.NewError(fiber.StatusInternalServerError, "Item lookup failed")
	}
	if item == nil {
		return DraftRecord{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Item not found: %s", itemCode))
	}

	target, err := refdata.ResolveTarget(machineID, shiftCode)
	if err != nil {
		return DraftRecord{}, fiber.NewError(fiber.StatusInternalServerError, "Target lookup failed")
	}

	shift, err := refdata.ResolveShift(shiftCode)
	if err != nil {
		return DraftRecord{}, fiber.NewError(fiber.StatusInternalServerError, "Shift lookup failed")
	}

	draft := DraftRecord{
		MachineID:          strings.TrimSpace(machineID),
		MachineNo:          strings.TrimSpace(machineNo),
		ItemCode:           itemCode,
		ProductionQuantity: quantity,
		OperatorName:       strings.TrimSpace(operatorName),
		ShiftCode:          strings.TrimSpace(shiftCode),
		Remarks:            remarks,
	}
	if perMeterWt != nil && *perMeterWt > 0 {
		draft.PerMeterWt = *perMeterWt
	}
	draft = draft.ApplyItem(item).ApplyTarget(target).ApplyShift(shift)

	return draft, nil
}

// POST /api/sections/:section/records
func CreateRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		var body CreateRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID, userName, err := auth.GetUserInfo(c)
		if err != nil {
			return err
		}

		draft, err := buildDraft(cfg, body.MachineID, body.MachineNo, body.ShiftCode, body.OperatorName, body.ItemCode, body.ProductionQuantity, body.PerMeterWt, body.Remarks)
		if err != nil {
			return err
		}

		record := draft.Record(cfg.Key)
		record.UsersName = userName

		if err := database.DB.Table(cfg.TableName).Create(&record).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create record")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "production_record:" + cfg.Key,
			EntityID:    record.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("%s: %s x %.2f", cfg.DisplayName, record.ItemCode, record.ProductionQuantity),
			After:       record,
		})

		return c.Status(fiber.StatusCreated).JSON(toResponse(record))
	}
}

// POST /api/sections/:section/records/batch
// One multi-row insert. Sections under BatchSharedEfficiency stamp a single
// shared efficiency (summed quantity over the shared target) on every row.
func BatchCreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		var body BatchCreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if len(body.Entries) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "entries must not be empty")
		}

		userID, userName, err := auth.GetUserInfo(c)
		if err != nil {
			return err
		}

		records := make([]models.ProductionRecord, 0, len(body.Entries))
		quantities := make([]float64, 0, len(body.Entries))
		for i, entry := range body.Entries {
			draft, err := buildDraft(cfg, body.MachineID, body.MachineNo, body.ShiftCode, body.OperatorName, entry.ItemCode, entry.ProductionQuantity, entry.PerMeterWt, entry.Remarks)
			if err != nil {
				if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusBadRequest {
					return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("entry %d: %s", i+1, fe.Message))
				}
				return err
			}
			record := draft.Record(cfg.Key)
			record.UsersName = userName
			records = append(records, record)
			quantities = append(quantities, entry.ProductionQuantity)
		}

		if cfg.Policy == BatchSharedEfficiency {
			target, err := refdata.ResolveTarget(body.MachineID, body.ShiftCode)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Target lookup failed")
			}
			shared := 0.0
			status := StatusTargetNotFound
			if target != nil {
				shared = BatchEfficiency(quantities, target.TargetQty)
				var total float64
				for _, q := range quantities {
					total += q
				}
				status = EfficiencyStatus(total, target.TargetQty)
			}
			for i := range records {
				records[i].Efficiency = shared
				records[i].EfficiencyStatus = status
			}
		}

		if err := database.DB.Table(cfg.TableName).Create(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create records")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "production_record:" + cfg.Key,
			EntityID:    records[0].ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("%s: batch of %d entries", cfg.DisplayName, len(records)),
			After:       records,
		})

		res := make([]RecordResponse, 0, len(records))
		for _, r := range records {
			res = append(res, toResponse(r))
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// GET /api/sections/:section/records
func ListRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Table(cfg.TableName)

		if v := c.Query("machine_id"); v != "" {
			dbq = dbq.Where("machine_id = ?", v)
		}
		if v := c.Query("shift_code"); v != "" {
			dbq = dbq.Where("shift_code = ?", v)
		}
		if v := c.Query("item_code"); v != "" {
			dbq = dbq.Where("item_code = ?", v)
		}
		if v := c.Query("start_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "start_date must be 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("created_at >= ?", d)
		}
		if v := c.Query("end_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "end_date must be 'YYYY-MM-DD'")
			}
			// inclusive day: everything before the next midnight
			dbq = dbq.Where("created_at < ?", d.AddDate(0, 0, 1))
		}

		var records []models.ProductionRecord
		if err := dbq.Order("created_at DESC").Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list records")
		}

		res := make([]RecordResponse, 0, len(records))
		for _, r := range records {
			res = append(res, toResponse(r))
		}
		return c.JSON(res)
	}
}

// GET /api/sections/:section/records/:id
func GetRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var record models.ProductionRecord
		if err := database.DB.Table(cfg.TableName).First(&record, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}
		return c.JSON(toResponse(record))
	}
}

// PUT /api/sections/:section/records/:id
// Full overwrite of editable fields; derived fields are recomputed from the
// submitted state, never from the stored values.
func UpdateRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var existing models.ProductionRecord
		if err := database.DB.Table(cfg.TableName).First(&existing, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}

		var body CreateRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		userID, userName, err := auth.GetUserInfo(c)
		if err != nil {
			return err
		}

		draft, err := buildDraft(cfg, body.MachineID, body.MachineNo, body.ShiftCode, body.OperatorName, body.ItemCode, body.ProductionQuantity, body.PerMeterWt, body.Remarks)
		if err != nil {
			return err
		}

		before := existing
		updated := draft.Record(cfg.Key)
		updated.ID = existing.ID
		updated.UsersName = userName
		updated.CreatedAt = existing.CreatedAt

		if err := database.DB.Table(cfg.TableName).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&updated).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update record")
		}

		_ = audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "production_record:" + cfg.Key,
			EntityID:    updated.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("%s: record %d updated", cfg.DisplayName, updated.ID),
			Before:      before,
			After:       updated,
		})

		return c.JSON(toResponse(updated))
	}
}

// DELETE /api/sections/:section/records/:id
func DeleteRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var existing models.ProductionRecord
		if err := database.DB.Table(cfg.TableName).First(&existing, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Record not found")
		}

		if err := database.DB.Table(cfg.TableName).Delete(&models.ProductionRecord{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete record")
		}

		userID, userName, uerr := auth.GetUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "production_record:" + cfg.Key,
				EntityID:    existing.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("%s: record %d deleted", cfg.DisplayName, existing.ID),
				Before:      existing,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/sections
func ListSectionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type sectionInfo struct {
			Key            string `json:"key"`
			DisplayName    string `json:"display_name"`
			ItemTable      string `json:"item_table"`
			Policy         string `json:"efficiency_policy"`
			RequireRemarks bool   `json:"require_remarks"`
		}
		res := make([]sectionInfo, 0)
		for _, cfg := range Sections() {
			res = append(res, sectionInfo{
				Key:            cfg.Key,
				DisplayName:    cfg.DisplayName,
				ItemTable:      cfg.ItemTable,
				Policy:         string(cfg.Policy),
				RequireRemarks: cfg.RequireRemarks,
			})
		}
		return c.JSON(res)
	}
}
