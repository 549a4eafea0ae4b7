package model

import "time"

type DayType struct {
	DTO
	Name         string  `gorm:"unique;not null" validate:"required" json:"name"` // Ngày thường, Cuối tuần, Ngày lễ
	SurchargePct float64 `gorm:"type:decimal(5,2);default:0" json:"surchargePct"`
}

type TimeSlot struct {
	DTO
	StartTime string `gorm:"not null" validate:"required" json:"startTime"` // HH:MM
}

type Showtime struct {
	DTO
	Date       time.Time `gorm:"type:date;not null;index" validate:"required" json:"date"`
	BasePrice  float64   `gorm:"type:decimal(12,2);not null" json:"basePrice"`
	MovieId    uint      `gorm:"index" json:"movieId"`
	RoomId     uint      `json:"roomId"`
	TimeSlotId uint      `json:"timeSlotId"`
	DayTypeId  uint      `json:"dayTypeId"`
	Movie      Movie     `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"movie"`
	Room       Room      `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"room"`
	TimeSlot   TimeSlot  `gorm:"foreignKey:TimeSlotId" json:"timeSlot"`
	DayType    DayType   `gorm:"foreignKey:DayTypeId" json:"dayType"`
	Tickets    []Ticket  `gorm:"foreignKey:ShowtimeId" json:"-"`
}

type ShowtimeResponse struct {
	ID         uint      `json:"id"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"startTime"`
	BasePrice  float64   `json:"basePrice"`
	MovieTitle string    `json:"movieTitle"`
	RoomName   string    `json:"roomName"`
	CinemaName string    `json:"cinemaName"`
	DayType    string    `json:"dayType"`
}

type CreateShowtimeInput struct {
	MovieId    uint    `json:"movieId" validate:"required,gt=0"`
	RoomId     uint    `json:"roomId" validate:"required,gt=0"`
	TimeSlotId uint    `json:"timeSlotId" validate:"required,gt=0"`
	DayTypeId  uint    `json:"dayTypeId" validate:"required,gt=0"`
	Date       string  `json:"date" validate:"required"` // YYYY-MM-DD
	BasePrice  float64 `json:"basePrice" validate:"required,gt=0"`
}
