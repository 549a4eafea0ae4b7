package model

import "time"

type Promotion struct {
	DTO
	Code          string    `gorm:"unique;not null;size:20" validate:"required" json:"code"`
	Description   string    `gorm:"type:text" json:"description"`
	DiscountType  string    `gorm:"not null" json:"discountType"` // chứa "%"/"Phần trăm" là giảm theo %, còn lại giảm thẳng tiền
	DiscountValue float64   `gorm:"type:decimal(12,2);not null" json:"discountValue"`
	RemainingUses int       `gorm:"default:0" json:"remainingUses"`
	Status        string    `gorm:"not null;default:'Hoạt động'" json:"status"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
}

type Promotions []Promotion

type CheckPromoInput struct {
	Code      string  `json:"code" validate:"required"`
	BookingId *uint   `json:"bookingId"`
	Subtotal  float64 `json:"subtotal" validate:"omitempty,gte=0"`
}

type ApplyPromoInput struct {
	Code string `json:"code" validate:"required"`
}

type PromoQuoteResponse struct {
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
