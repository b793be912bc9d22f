package database

import (
	"log"

	"wiretrack-backend/internal/config"
	"wiretrack-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Physical tables that share a model struct. Section tables all carry the
// ProductionRecord shape; the three item tables all carry the Item shape.
var sectionTables = map[string]string{
	"flatteningsection": "flattening",
	"spiralsection":     "spiral",
	"pvcsection":        "pvc",
	"pvccoatingsection": "pvccoating",
	"cuttingsection":    "cutting",
}

var itemTables = []string{"items", "spiralitem", "pvcitem"}

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Target{},
		&models.Shift{},
		&models.RawMaterialLog{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate error: %v", err)
	}

	for _, table := range itemTables {
		if err := DB.Table(table).AutoMigrate(&models.Item{}); err != nil {
			log.Fatalf("AutoMigrate error for %s: %v", table, err)
		}
	}
	for table := range sectionTables {
		if err := DB.Table(table).AutoMigrate(&models.ProductionRecord{}); err != nil {
			log.Fatalf("AutoMigrate error for %s: %v", table, err)
		}
	}

	// Rows imported from the old spreadsheets arrived without a section tag.
	// Backfill so grouped reports stay correct.
	for table, section := range sectionTables {
		if err := DB.Exec("UPDATE "+table+" SET section_name = ? WHERE section_name = '' OR section_name IS NULL", section).Error; err != nil {
			log.Printf("section_name backfill failed for %s (continuing): %v", table, err)
		}
	}

	log.Println("Database connected. Migration complete.")
}
