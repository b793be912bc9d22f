package rawmaterial

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wiretrack-backend/internal/audit"
	"wiretrack-backend/internal/auth"
	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Every response on this resource uses the {success, data, message, error}
// envelope; clients of the old raw-material API depend on it.

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error",
		"error":   err.Error(),
	})
}

type CreateLogRequest struct {
	GatePass        string  `json:"gate_pass"`
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	ItemCode        string  `json:"item_code"`
	WireSize        string  `json:"wire_size"`
	Quantity        float64 `json:"quantity"`
	PerMeterWt      float64 `json:"per_meter_wt"`
	UOM             string  `json:"uom"`
	SupplierName    string  `json:"supplier_name"`
	VehicleNo       string  `json:"vehicle_no"`
	OperatorName    string  `json:"operator_name"`
	Remarks         string  `json:"remarks"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
}

type UpdateLogRequest struct {
	GatePass        *string  `json:"gate_pass"`
	TransactionType *string  `json:"transaction_type"`
	Category        *string  `json:"category"`
	ItemCode        *string  `json:"item_code"`
	WireSize        *string  `json:"wire_size"`
	Quantity        *float64 `json:"quantity"`
	PerMeterWt      *float64 `json:"per_meter_wt"`
	UOM             *string  `json:"uom"`
	SupplierName    *string  `json:"supplier_name"`
	VehicleNo       *string  `json:"vehicle_no"`
	OperatorName    *string  `json:"operator_name"`
	Remarks         *string  `json:"remarks"`
	Reason          *string  `json:"reason"`
	Status          *string  `json:"status"`
}

var validStatuses = map[models.RawMaterialStatus]bool{
	models.RawMaterialStatusActive:    true,
	models.RawMaterialStatusCompleted: true,
	models.RawMaterialStatusCancelled: true,
	models.RawMaterialStatusOnHold:    true,
	models.RawMaterialStatusPending:   true,
}

// GET /api/raw-material-log
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		limit := c.QueryInt("limit", 10)
		if limit < 1 || limit > 200 {
			limit = 10
		}

		dbq := database.DB.Model(&models.RawMaterialLog{})

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			dbq = dbq.Where(
				"gate_pass ILIKE ? OR category ILIKE ? OR wire_size ILIKE ? OR remarks ILIKE ? OR reason ILIKE ?",
				like, like, like, like, like,
			)
		}
		if v := c.Query("transaction_type"); v != "" {
			dbq = dbq.Where("transaction_type = ?", v)
		}
		if v := c.Query("category"); v != "" {
			dbq = dbq.Where("category = ?", v)
		}
		if v := c.Query("status"); v != "" {
			dbq = dbq.Where("status = ?", v)
		}
		if v := c.Query("start_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fail(c, fiber.StatusBadRequest, "start_date must be 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("created_at >= ?", d)
		}
		if v := c.Query("end_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				return fail(c, fiber.StatusBadRequest, "end_date must be 'YYYY-MM-DD'")
			}
			dbq = dbq.Where("created_at < ?", d.AddDate(0, 0, 1))
		}

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return serverError(c, err)
		}

		var logs []models.RawMaterialLog
		if err := dbq.Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&logs).Error; err != nil {
			return serverError(c, err)
		}

		totalPages := int((total + int64(limit) - 1) / int64(limit))
		return ok(c, fiber.Map{
			"logs": logs,
			"pagination": fiber.Map{
				"page":        page,
				"limit":       limit,
				"total":       total,
				"total_pages": totalPages,
			},
		})
	}
}

// GET /api/raw-material-log/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid id")
		}

		var entry models.RawMaterialLog
		if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(c, fiber.StatusNotFound, "Log not found")
			}
			return serverError(c, err)
		}
		return ok(c, entry)
	}
}

// POST /api/raw-material-log
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateLogRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		body.GatePass = strings.TrimSpace(body.GatePass)
		if body.GatePass == "" {
			return fail(c, fiber.StatusBadRequest, "gate_pass is required")
		}
		if body.Quantity <= 0 {
			return fail(c, fiber.StatusBadRequest, "quantity must be positive")
		}
		txType := models.TransactionType(body.TransactionType)
		if txType != models.TransactionInward && txType != models.TransactionOutward {
			return fail(c, fiber.StatusBadRequest, "transaction_type must be inward or outward")
		}
		status := models.RawMaterialStatusActive
		if body.Status != "" {
			status = models.RawMaterialStatus(body.Status)
			if !validStatuses[status] {
				return fail(c, fiber.StatusBadRequest, "Invalid status")
			}
		}

		var existing models.RawMaterialLog
		if err := database.DB.Where("gate_pass = ?", body.GatePass).First(&existing).Error; err == nil {
			return fail(c, fiber.StatusBadRequest, "Gate pass number already exists")
		}

		entry := models.RawMaterialLog{
			GatePass:        body.GatePass,
			TransactionType: txType,
			Category:        body.Category,
			ItemCode:        body.ItemCode,
			WireSize:        body.WireSize,
			Quantity:        body.Quantity,
			PerMeterWt:      body.PerMeterWt,
			Weight:          production.ComputeWeight(body.Quantity, body.PerMeterWt),
			UOM:             body.UOM,
			SupplierName:    body.SupplierName,
			VehicleNo:       body.VehicleNo,
			OperatorName:    body.OperatorName,
			Remarks:         body.Remarks,
			Reason:          body.Reason,
			Status:          status,
		}

		if err := database.DB.Create(&entry).Error; err != nil {
			return serverError(c, err)
		}

		if userID, userName, err := auth.GetUserInfo(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "raw_material_log",
				EntityID:    entry.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Gate pass %s (%s)", entry.GatePass, entry.TransactionType),
				After:       entry,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": entry})
	}
}

// PUT /api/raw-material-log/:id
// Partial update: only fields present in the body are overwritten. Weight is
// recomputed whenever quantity or per_meter_wt arrives.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid id")
		}

		var entry models.RawMaterialLog
		if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(c, fiber.StatusNotFound, "Log not found")
			}
			return serverError(c, err)
		}

		var body UpdateLogRequest
		if err := c.BodyParser(&body); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid request body")
		}

		before := entry

		if body.GatePass != nil {
			gp := strings.TrimSpace(*body.GatePass)
			if gp == "" {
				return fail(c, fiber.StatusBadRequest, "gate_pass cannot be empty")
			}
			if gp != entry.GatePass {
				var dup models.RawMaterialLog
				if err := database.DB.Where("gate_pass = ? AND id <> ?", gp, entry.ID).First(&dup).Error; err == nil {
					return fail(c, fiber.StatusBadRequest, "Gate pass number already exists")
				}
			}
			entry.GatePass = gp
		}
		if body.TransactionType != nil {
			txType := models.TransactionType(*body.TransactionType)
			if txType != models.TransactionInward && txType != models.TransactionOutward {
				return fail(c, fiber.StatusBadRequest, "transaction_type must be inward or outward")
			}
			entry.TransactionType = txType
		}
		if body.Category != nil {
			entry.Category = *body.Category
		}
		if body.ItemCode != nil {
			entry.ItemCode = *body.ItemCode
		}
		if body.WireSize != nil {
			entry.WireSize = *body.WireSize
		}
		if body.Quantity != nil {
			if *body.Quantity <= 0 {
				return fail(c, fiber.StatusBadRequest, "quantity must be positive")
			}
			entry.Quantity = *body.Quantity
		}
		if body.PerMeterWt != nil {
			entry.PerMeterWt = *body.PerMeterWt
		}
		if body.Quantity != nil || body.PerMeterWt != nil {
			entry.Weight = production.ComputeWeight(entry.Quantity, entry.PerMeterWt)
		}
		if body.UOM != nil {
			entry.UOM = *body.UOM
		}
		if body.SupplierName != nil {
			entry.SupplierName = *body.SupplierName
		}
		if body.VehicleNo != nil {
			entry.VehicleNo = *body.VehicleNo
		}
		if body.OperatorName != nil {
			entry.OperatorName = *body.OperatorName
		}
		if body.Remarks != nil {
			entry.Remarks = *body.Remarks
		}
		if body.Reason != nil {
			entry.Reason = *body.Reason
		}
		if body.Status != nil {
			status := models.RawMaterialStatus(*body.Status)
			if !validStatuses[status] {
				return fail(c, fiber.StatusBadRequest, "Invalid status")
			}
			entry.Status = status
		}

		if err := database.DB.Save(&entry).Error; err != nil {
			return serverError(c, err)
		}

		if userID, userName, err := auth.GetUserInfo(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "raw_material_log",
				EntityID:    entry.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Gate pass %s updated", entry.GatePass),
				Before:      before,
				After:       entry,
			})
		}

		return ok(c, entry)
	}
}

// DELETE /api/raw-material-log/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid id")
		}

		var entry models.RawMaterialLog
		if err := database.DB.First(&entry, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(c, fiber.StatusNotFound, "Log not found")
			}
			return serverError(c, err)
		}

		if err := database.DB.Delete(&entry).Error; err != nil {
			return serverError(c, err)
		}

		if userID, userName, err := auth.GetUserInfo(c); err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "raw_material_log",
				EntityID:    entry.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Gate pass %s deleted", entry.GatePass),
				Before:      entry,
			})
		}

		return ok(c, fiber.Map{"message": "Log deleted"})
	}
}

// GET /api/raw-material-log/stats/overview
func StatsOverviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var logs []models.RawMaterialLog
		if err := database.DB.Find(&logs).Error; err != nil {
			return serverError(c, err)
		}
		return ok(c, BuildOverview(logs, time.Now()))
	}
}

// GET /api/raw-material-log/stats/dashboard
func StatsDashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var logs []models.RawMaterialLog
		if err := database.DB.Find(&logs).Error; err != nil {
			return serverError(c, err)
		}
		return ok(c, BuildDashboard(logs, time.Now()))
	}
}
