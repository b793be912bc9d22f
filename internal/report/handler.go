package report

import (
	"fmt"
	"time"

	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func sectionFromParams(c *fiber.Ctx) (production.SectionConfig, error) {
	cfg, ok := production.SectionByKey(c.Params("section"))
	if !ok {
		return production.SectionConfig{}, fiber.NewError(fiber.StatusNotFound, "Unknown section")
	}
	return cfg, nil
}

// fetchRecords loads a section's rows, optionally windowed by start/end date
// query parameters (end date inclusive).
func fetchRecords(c *fiber.Ctx, cfg production.SectionConfig) ([]models.ProductionRecord, error) {
	dbq := database.DB.Table(cfg.TableName)

	if v := c.Query("start_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "start_date must be 'YYYY-MM-DD'")
		}
		dbq = dbq.Where("created_at >= ?", d)
	}
	if v := c.Query("end_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "end_date must be 'YYYY-MM-DD'")
		}
		dbq = dbq.Where("created_at < ?", d.AddDate(0, 0, 1))
	}

	var records []models.ProductionRecord
	if err := dbq.Find(&records).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load records")
	}
	return records, nil
}

// GET /api/reports/sections/:section/summary?group_by=
func SectionSummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		groupBy := c.Query("group_by", "item_name")
		keyFn, ok := GroupKeyFunc(groupBy)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "group_by must be one of item_name, material_type, finished_product_name, machine_no, shift_name, day")
		}

		records, err := fetchRecords(c, cfg)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"section":  cfg.Key,
			"group_by": groupBy,
			"groups":   Summarize(records, keyFn),
		})
	}
}

// GET /api/reports/sections/:section/daily
func SectionDailyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		records, err := fetchRecords(c, cfg)
		if err != nil {
			return err
		}

		today, yesterday := DailyTotals(records, time.Now())
		return c.JSON(fiber.Map{
			"section":   cfg.Key,
			"today":     today,
			"yesterday": yesterday,
		})
	}
}

// GET /api/reports/sections/:section/weekly
func SectionWeeklyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		records, err := fetchRecords(c, cfg)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"section": cfg.Key,
			"days":    WeeklyBuckets(records, time.Now()),
		})
	}
}

// GET /api/reports/sections/:section/top-items?limit=
func SectionTopItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		limit := c.QueryInt("limit", 5)
		if limit < 1 || limit > 50 {
			limit = 5
		}

		records, err := fetchRecords(c, cfg)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"section": cfg.Key,
			"items":   TopItems(records, limit),
		})
	}
}

func loadLedgerRows(c *fiber.Ctx) ([]LedgerRow, error) {
	flatteningCfg, _ := production.SectionByKey("flattening")
	spiralCfg, _ := production.SectionByKey("spiral")

	flattening, err := fetchRecords(c, flatteningCfg)
	if err != nil {
		return nil, err
	}
	spiral, err := fetchRecords(c, spiralCfg)
	if err != nil {
		return nil, err
	}
	return BuildLedger(flattening, spiral), nil
}

// GET /api/reports/ledger
func LedgerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := loadLedgerRows(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"rows":      rows,
			"unit_note": UnitNote,
		})
	}
}

// GET /api/reports/inventory
func InventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := loadLedgerRows(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"rows":      SortForInventory(rows),
			"unit_note": UnitNote,
		})
	}
}

// GET /api/reports/sections/:section/export?format=csv|xlsx
func SectionExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := sectionFromParams(c)
		if err != nil {
			return err
		}

		records, err := fetchRecords(c, cfg)
		if err != nil {
			return err
		}

		filename := fmt.Sprintf("%s-%s", cfg.Key, uuid.NewString()[:8])

		switch c.Query("format", "csv") {
		case "csv":
			c.Set(fiber.HeaderContentType, "text/csv")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
			return c.SendString(BuildCSV(records))
		case "xlsx":
			buf, err := BuildXLSX(cfg.DisplayName, records)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
			}
			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
			return c.Send(buf.Bytes())
		default:
			return fiber.NewError(fiber.StatusBadRequest, "format must be csv or xlsx")
		}
	}
}
