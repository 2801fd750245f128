package configs

import (
	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DatabaseURL)
	default:
		dial = sqlite.Open(cfg.DatabaseURL)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// Migrate runs the schema migration. Tests call it against their own DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{}, &entity.Event{}, &entity.GalleryItem{},
		&entity.Game{}, &entity.PartyPackage{},
		&entity.Asset{}, &entity.ContactMessage{},
		&entity.ChatUser{}, &entity.UserChat{},
	)
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}
