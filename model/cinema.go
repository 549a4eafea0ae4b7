package model

type Cinema struct {
	DTO
	Name    string `gorm:"not null;unique" validate:"required" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Rooms   []Room `gorm:"foreignKey:CinemaId" json:"rooms,omitempty"`
}

type Cinemas []Cinema

type Room struct {
	DTO
	Name     string `gorm:"not null" validate:"required" json:"name"`
	Rows     int    `gorm:"not null" json:"rows"`
	Columns  int    `gorm:"not null" json:"columns"`
	CinemaId uint   `json:"cinemaId"`
	Cinema   Cinema `gorm:"foreignKey:CinemaId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Seats    []Seat `gorm:"foreignKey:RoomId" json:"seats,omitempty"`
}
