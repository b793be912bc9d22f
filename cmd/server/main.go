package main

import (
	"log"
	"strings"

	"wiretrack-backend/internal/audit"
	"wiretrack-backend/internal/auth"
	"wiretrack-backend/internal/config"
	"wiretrack-backend/internal/database"
	"wiretrack-backend/internal/models"
	"wiretrack-backend/internal/production"
	"wiretrack-backend/internal/rawmaterial"
	"wiretrack-backend/internal/refdata"
	"wiretrack-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/users", auth.CreateUserHandler())

	// Item masters (items / spiralitem / pvcitem via ?item_table=)
	adminRoutes.Post("/items", refdata.CreateItemHandler())
	adminRoutes.Put("/items/:id", refdata.UpdateItemHandler())
	adminRoutes.Delete("/items/:id", refdata.DeleteItemHandler())

	// Machine+shift targets
	adminRoutes.Post("/targets", refdata.CreateTargetHandler())
	adminRoutes.Put("/targets/:id", refdata.UpdateTargetHandler())
	adminRoutes.Delete("/targets/:id", refdata.DeleteTargetHandler())

	// Shifts
	adminRoutes.Post("/shifts", refdata.CreateShiftHandler())
	adminRoutes.Put("/shifts/:id", refdata.UpdateShiftHandler())
	adminRoutes.Delete("/shifts/:id", refdata.DeleteShiftHandler())

	// Reference data reads + entry-form lookups
	protected.Get("/items", refdata.ListItemsHandler())
	protected.Get("/targets", refdata.ListTargetsHandler())
	protected.Get("/shifts", refdata.ListShiftsHandler())
	protected.Get("/lookup/item", refdata.LookupItemHandler())
	protected.Get("/lookup/target", refdata.LookupTargetHandler())

	// Production sections (one generic pipeline, section key in the path)
	protected.Get("/sections", production.ListSectionsHandler())
	protected.Post("/sections/:section/records", production.CreateRecordHandler())
	protected.Post("/sections/:section/records/batch", production.BatchCreateHandler())
	protected.Get("/sections/:section/records", production.ListRecordsHandler())
	protected.Get("/sections/:section/records/:id", production.GetRecordHandler())
	protected.Put("/sections/:section/records/:id", production.UpdateRecordHandler())
	protected.Delete("/sections/:section/records/:id", production.DeleteRecordHandler())

	// Raw material log (envelope API kept for the old store clients)
	protected.Get("/raw-material-log/stats/overview", rawmaterial.StatsOverviewHandler())
	protected.Get("/raw-material-log/stats/dashboard", rawmaterial.StatsDashboardHandler())
	protected.Get("/raw-material-log", rawmaterial.ListHandler())
	protected.Get("/raw-material-log/:id", rawmaterial.GetHandler())
	protected.Post("/raw-material-log", rawmaterial.CreateHandler())
	protected.Put("/raw-material-log/:id", rawmaterial.UpdateHandler())
	protected.Delete("/raw-material-log/:id", rawmaterial.DeleteHandler())

	// Reports
	protected.Get("/reports/sections/:section/summary", report.SectionSummaryHandler())
	protected.Get("/reports/sections/:section/daily", report.SectionDailyHandler())
	protected.Get("/reports/sections/:section/weekly", report.SectionWeeklyHandler())
	protected.Get("/reports/sections/:section/top-items", report.SectionTopItemsHandler())
	protected.Get("/reports/sections/:section/export", report.SectionExportHandler())
	protected.Get("/reports/ledger", report.LedgerHandler())
	protected.Get("/reports/inventory", report.InventoryHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
