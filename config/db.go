package config

import (
	"log"
	"os"
	"sync"

	"github.com/arukavina95/CityVoice/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB   *gorm.DB
	once sync.Once
)

// ConnectDB initializes and returns the PostgreSQL connection.
func ConnectDB() *gorm.DB {
	once.Do(func() {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			log.Fatal("Please define the DATABASE_URL environment variable")
		}

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Connected to PostgreSQL!")

		DB = db
	})

	return DB
}

// Migrate runs schema migration and seeds the fixed lookup tables. Exported
// so tests can prepare an in-memory database the same way.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.Status{},
		&models.ProblemType{},
		&models.User{},
		&models.Problem{},
		&models.Note{},
	); err != nil {
		return err
	}
	return seed(db)
}

// seed inserts the enumerated roles, statuses and problem types. Uses
// FirstOrCreate so restarts are no-ops.
func seed(db *gorm.DB) error {
	roles := []models.Role{
		{ID: 1, Name: string(models.RoleCitizen)},
		{ID: 2, Name: string(models.RoleAdministrator)},
		{ID: 3, Name: string(models.RoleOfficial)},
	}
	for _, r := range roles {
		if err := db.Where(models.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	statuses := []models.Status{
		{ID: 1, Name: models.StatusNew},
		{ID: 2, Name: models.StatusInProgress},
		{ID: 3, Name: models.StatusResolved},
		{ID: 4, Name: models.StatusRejected},
	}
	for _, s := range statuses {
		if err := db.Where(models.Status{Name: s.Name}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	problemTypes := []models.ProblemType{
		{ID: 1, Name: "Pothole"},
		{ID: 2, Name: "Broken streetlight"},
		{ID: 3, Name: "Illegal waste dump"},
		{ID: 4, Name: "Damaged public infrastructure"},
		{ID: 5, Name: "Environmental pollution"},
	}
	for _, pt := range problemTypes {
		if err := db.Where(models.ProblemType{Name: pt.Name}).FirstOrCreate(&pt).Error; err != nil {
			return err
		}
	}

	return nil
}
