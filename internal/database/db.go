package database

import (
	"log"

	"github.com/campushire/campushire/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) *gorm.DB {
	var err error
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the services map to their dedup errors.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	err = DB.AutoMigrate(
		&models.Company{},
		&models.Student{},
		&models.Skill{},
		&models.Job{},
		&models.Application{},
		&models.Session{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	return DB
}
