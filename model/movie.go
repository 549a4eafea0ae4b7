package model

import "time"

type Genre struct {
	DTO
	Name string `gorm:"unique;not null" validate:"required" json:"name"`
}

type Movie struct {
	DTO
	Title       string    `gorm:"not null;index" validate:"required" json:"title"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    int       `gorm:"not null" validate:"required" json:"duration"` // phút
	ReleaseDate time.Time `gorm:"type:date" json:"releaseDate"`
	Status      string    `gorm:"not null;default:'Đang chiếu';index" json:"status"`
	ImageUrl    string    `json:"imageUrl"`
	TrailerUrl  string    `json:"trailerUrl"`
	Director    string    `json:"director"`
	Cast        string    `gorm:"type:text" json:"cast"`
	Genres      []Genre   `gorm:"many2many:movie_genres;" json:"genres"`
}

type Movies []Movie

type FilterMovieInput struct {
	Pagination
	Title  string `query:"title"`
	Genre  string `query:"genre"`
	Status string `query:"status"`
}

// MovieSummary kèm điểm đánh giá trung bình cho danh sách phim.
type MovieSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	ReleaseDate time.Time `json:"releaseDate"`
	Status      string    `json:"status"`
	ImageUrl    string    `json:"imageUrl"`
	Genres      []string  `json:"genres"`
	AvgRating   float64   `json:"avgRating"`
	ReviewCount int64     `json:"reviewCount"`
	TicketsSold int64     `json:"ticketsSold,omitempty"`
}
