package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Count174/k-board-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserDevice{},
		&models.Alert{},
		&models.DailyCheck{},
		&models.HealthEvent{},
		&models.Medication{},
		&models.MedicationIntake{},
		&models.FinanceRecord{},
		&models.Budget{},
		&models.Goal{},
		&models.GoalCheckin{},
		&models.Saving{},
		&models.Loan{},
		&models.LoanPayment{},
		&models.Todo{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
