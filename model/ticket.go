package model

type Ticket struct {
	DTO
	Price      float64  `gorm:"type:decimal(12,2);not null" json:"price"`
	Status     string   `gorm:"not null;default:'Chưa sử dụng'" json:"status"`
	QRCode     *string  `gorm:"size:64;uniqueIndex" json:"qrCode,omitempty"`
	ShowtimeId uint     `gorm:"index" json:"showtimeId"`
	SeatId     uint     `gorm:"index" json:"seatId"`
	BookingId  *uint    `gorm:"index;default:null" json:"bookingId"`
	Showtime   Showtime `gorm:"foreignKey:ShowtimeId" json:"-"`
	Seat       Seat     `gorm:"foreignKey:SeatId" json:"-"`
	Booking    *Booking `gorm:"foreignKey:BookingId;constraint:OnDelete:SET NULL" json:"-"`
}

type TicketResponse struct {
	TicketId   uint    `json:"ticketId"`
	SeatNumber string  `json:"seatNumber"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	QRCode     *string `json:"qrCode,omitempty"`
	MovieTitle string  `json:"movieTitle"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	RoomName   string  `json:"roomName"`
	CinemaName string  `json:"cinemaName"`
	BookingId  *uint   `json:"bookingId,omitempty"`
}

type VerifyTicketInput struct {
	QRCode string `json:"qrCode" validate:"required"`
}

// VerifiedTicketInfo là snapshot trả về khi soát vé thành công.
type VerifiedTicketInfo struct {
	TicketId     uint   `json:"ticketId"`
	MovieTitle   string `json:"movieTitle"`
	CustomerName string `json:"customerName"`
	SeatNumber   string `json:"seatNumber"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	RoomName     string `json:"roomName"`
	CinemaName   string `json:"cinemaName"`
}
