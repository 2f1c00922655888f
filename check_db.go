package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"
	"backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var sweets []ds.Sweet
	err = db.Order("id").Find(&sweets).Error
	if err != nil {
		log.Fatal("Failed to get sweets:", err)
	}

	fmt.Println("Sweets in database:")
	for _, sweet := range sweets {
		fmt.Printf("ID: %d, Name: %s, Category: %s, Price: %.2f, Quantity: %d\n",
			sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity)
	}
}
