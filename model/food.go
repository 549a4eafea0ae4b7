package model

type FoodItem struct {
	DTO
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Price       float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	Category    string  `gorm:"index" json:"category"` // Bắp, Nước, Combo...
	Description string  `gorm:"type:text" json:"description"`
	ImageUrl    string  `json:"imageUrl"`
}

type FoodItems []FoodItem

type FoodOrderLine struct {
	DTO
	BookingId  uint     `gorm:"index;not null" json:"bookingId"`
	FoodItemId uint     `gorm:"not null" json:"foodItemId"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemId" json:"foodItem"`
	Booking    Booking  `gorm:"foreignKey:BookingId" json:"-"`
}

type FoodLineDetail struct {
	FoodItemId uint    `json:"foodItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}
