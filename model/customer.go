package model

import "time"

type Customer struct {
	DTO
	Name          string     `gorm:"not null" validate:"required" json:"name"`
	Email         string     `gorm:"unique;not null" validate:"required,email" json:"email"`
	Phone         string     `gorm:"not null;index" json:"phone"`
	Password      string     `gorm:"not null" json:"-"`
	DateOfBirth   *time.Time `gorm:"type:date" json:"dateOfBirth"`
	Gender        *string    `json:"gender"`
	Address       *string    `json:"address"`
	RegisteredAt  time.Time  `json:"registeredAt"`
	LoyaltyPoints int        `gorm:"default:0" json:"loyaltyPoints"`
}

type Customers []Customer

type RegisterInput struct {
	Name        string  `validate:"required" json:"name"`
	Email       string  `validate:"required,email" json:"email"`
	Phone       string  `validate:"required,min=9" json:"phone"`
	Password    string  `validate:"required,min=6" json:"password"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}

type UpdateProfileInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
}

type ProfileResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	Gender        *string    `json:"gender"`
	Address       *string    `json:"address"`
	LoyaltyPoints int        `json:"loyaltyPoints"`
	UserType      string     `json:"userType"`
	CinemaId      *uint      `json:"cinemaId,omitempty"`
}
