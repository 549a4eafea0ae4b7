package model

type SeatType struct {
	DTO
	Name         string  `gorm:"unique;not null" validate:"required" json:"name"` // NORMAL, VIP, COUPLE
	SurchargePct float64 `gorm:"type:decimal(5,2);default:0" json:"surchargePct"`
}

type Seat struct {
	DTO
	Row        int       `gorm:"not null" json:"row"`
	Column     int       `gorm:"not null" json:"column"`
	SeatNumber string    `gorm:"not null" json:"seatNumber"` // ví dụ "A5"
	Status     int       `gorm:"not null;default:2" json:"status"`
	RoomId     uint      `gorm:"index" json:"roomId"`
	Room       Room      `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	SeatTypeId *uint     `json:"seatTypeId"`
	SeatType   *SeatType `gorm:"foreignKey:SeatTypeId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"seatType,omitempty"`
}

// SeatStatusResponse là một ô trong sơ đồ ghế trả về cho client.
type SeatStatusResponse struct {
	SeatId     uint    `json:"seatId"`
	SeatNumber string  `json:"seatNumber"`
	Row        int     `json:"row"`
	Column     int     `json:"column"`
	SeatType   string  `json:"seatType"`
	Price      float64 `json:"price"`
	IsBooked   bool    `json:"isBooked"`
	IsAisle    bool    `json:"isAisle"`
}
