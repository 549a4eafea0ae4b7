package model

type Staff struct {
	DTO
	Name     string  `gorm:"not null" validate:"required" json:"name"`
	Email    string  `gorm:"unique;not null" validate:"required,email" json:"email"`
	Phone    string  `json:"phone"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"not null;default:'Staff'" json:"role"` // Staff, Admin
	CinemaId *uint   `json:"cinemaId"`                             // null nếu không gắn với rạp cụ thể
	Cinema   *Cinema `gorm:"foreignKey:CinemaId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"cinema,omitempty"`
}

type Staffs []Staff
