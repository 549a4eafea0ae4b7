package database

import (
	"fmt"
	"strconv"

	"cinema_booking/config"
	"cinema_booking/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Customer{},
		&model.Staff{},
		&model.Cinema{},
		&model.Room{},
		&model.SeatType{},
		&model.Seat{},
		&model.Genre{},
		&model.Movie{},
		&model.DayType{},
		&model.TimeSlot{},
		&model.Showtime{},
		&model.Booking{},
		&model.Ticket{},
		&model.FoodItem{},
		&model.FoodOrderLine{},
		&model.Promotion{},
		&model.Review{},
	)
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}
