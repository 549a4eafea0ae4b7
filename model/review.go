package model

type Review struct {
	DTO
	CustomerId uint     `gorm:"index;not null" json:"customerId"`
	MovieId    uint     `gorm:"index;not null" json:"movieId"`
	TicketId   *uint    `json:"ticketId"` // gắn với vé đã xem nếu có
	Rating     int      `gorm:"not null" validate:"required,min=1,max=5" json:"rating"`
	Content    string   `gorm:"type:text" json:"content"`
	Customer   Customer `gorm:"foreignKey:CustomerId" json:"-"`
	Movie      Movie    `gorm:"foreignKey:MovieId" json:"-"`
}

type CreateReviewInput struct {
	CustomerId uint   `json:"customerId" validate:"required,gt=0"`
	MovieId    uint   `json:"movieId" validate:"required,gt=0"`
	TicketId   *uint  `json:"ticketId"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Content    string `json:"content"`
}

type ReviewResponse struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Content      string `json:"content"`
	CreatedAt    string `json:"createdAt"`
}
