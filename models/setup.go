package models

import (
	"log/slog"
	"os"

	sloggorm "github.com/imdatngo/slog-gorm/v2"
	"gorm.io/driver/postgres"
	_ "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	GormDB *gorm.DB
}

var DEFAULT_ORGANISATION_NAME = "Skillboard"

var DB *Database

// migrateSchema keeps the schema in step with the model structs. Runs on
// every startup; AutoMigrate only adds what is missing.
func migrateSchema(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&Profile{}, &JobProfile{}, &Qualifier{}, &Location{},
		&Evaluation{}, &EvaluationStat{}, &BrandingSetting{})
}

func ConnectDatabase() {
	database, err := gorm.Open(postgres.Open(os.Getenv("DATABASE_URL")), &gorm.Config{
		Logger: sloggorm.New(),
	})
	if err != nil {
		panic("Failed to connect to database!")
	}

	if err := migrateSchema(database); err != nil {
		slog.Error("failed to migrate database schema", "error", err)
		panic("Failed to migrate database schema!")
	}

	DB = &Database{GormDB: database}

	// data and fixtures added
	branding, err := DB.GetBrandingSetting()
	if err != nil || branding == nil {
		slog.Info("No branding found, creating default branding settings")
		DB.CreateBrandingSetting(DEFAULT_ORGANISATION_NAME, "", "#1f6feb")
	}
}
