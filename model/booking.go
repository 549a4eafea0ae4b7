package model

import "time"

type Booking struct {
	DTO
	CustomerId       uint            `gorm:"index;not null" json:"customerId"`
	Status           string          `gorm:"not null;default:'Chưa thanh toán'" json:"status"`
	TotalAmount      float64         `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	OriginalSubtotal float64         `gorm:"type:decimal(12,2);not null" json:"originalSubtotal"`
	PaymentMethod    string          `json:"paymentMethod"`
	PromoCode        *string         `gorm:"size:20" json:"promoCode"`
	PromoRedeemed    bool            `gorm:"default:false" json:"-"`
	BookedAt         time.Time       `json:"bookedAt"`
	Customer         Customer        `gorm:"foreignKey:CustomerId" json:"-"`
	Tickets          []Ticket        `gorm:"foreignKey:BookingId" json:"tickets,omitempty"`
	FoodLines        []FoodOrderLine `gorm:"foreignKey:BookingId" json:"foodLines,omitempty"`
}

type Bookings []Booking

type FoodLineInput struct {
	FoodItemId uint `json:"foodItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,gt=0"`
}

type CreateBookingInput struct {
	CustomerId    uint            `json:"customerId" validate:"required,gt=0"`
	ShowtimeId    uint            `json:"showtimeId" validate:"required,gt=0"`
	SeatIds       []uint          `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	Foods         []FoodLineInput `json:"foods" validate:"omitempty,dive"`
	PromoCode     *string         `json:"promoCode"`
	PaymentMethod string          `json:"paymentMethod"`
}

type CreateOfflineBookingInput struct {
	ShowtimeId    uint   `json:"showtimeId" validate:"required,gt=0"`
	SeatIds       []uint `json:"seatIds" validate:"required,min=1,dive,gt=0"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required,min=9"`
	PaymentMethod string `json:"paymentMethod"`
}

type CancelBookingInput struct {
	BookingId uint `json:"bookingId" validate:"required,gt=0"`
}

type CancelTicketInput struct {
	TicketId uint `json:"ticketId" validate:"required,gt=0"`
}

type ConfirmPaymentInput struct {
	BookingId uint `json:"bookingId" validate:"required,gt=0"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof='Chưa thanh toán' 'Chờ Duyệt' 'Đã Thanh toán' 'Đã Hủy'"`
}

type BookingResponse struct {
	BookingId        uint             `json:"bookingId"`
	Status           string           `json:"status"`
	TotalAmount      float64          `json:"totalAmount"`
	OriginalSubtotal float64          `json:"originalSubtotal"`
	PromoCode        *string          `json:"promoCode,omitempty"`
	PaymentMethod    string           `json:"paymentMethod"`
	BookedAt         time.Time        `json:"bookedAt"`
	CustomerName     string           `json:"customerName"`
	Tickets          []TicketResponse `json:"tickets"`
	Foods            []FoodLineDetail `json:"foods"`
}
