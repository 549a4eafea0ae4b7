package handler

import (
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func movieSummary(db *gorm.DB, m model.Movie) model.MovieSummary {
	var genres []string
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}

	var avg float64
	var count int64
	db.Model(&model.Review{}).Where("movie_id = ?", m.ID).Count(&count)
	if count > 0 {
		db.Model(&model.Review{}).Where("movie_id = ?", m.ID).
			Select("AVG(rating)").Scan(&avg)
	}

	return model.MovieSummary{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Duration:    m.Duration,
		ReleaseDate: m.ReleaseDate,
		Status:      m.Status,
		ImageUrl:    m.ImageUrl,
		Genres:      genres,
		AvgRating:   avg,
		ReviewCount: count,
	}
}

// GetMovies danh sách phim đang chiếu, lọc theo tên/thể loại nếu có.
func GetMovies(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Movie{}).Preload("Genres")

	status := c.Query("status", constants.MOVIE_NOW_SHOWING)
	if status != "all" {
		query = query.Where("status = ?", status)
	}
	if title := c.Query("title"); title != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	if genre := c.Query("genre"); genre != "" {
		query = query.Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
			Joins("JOIN genres ON genres.id = movie_genres.genre_id").
			Where("genres.name = ?", genre)
	}

	var movies []model.Movie
	if err := query.Order("release_date DESC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	summaries := make([]model.MovieSummary, 0, len(movies))
	for _, m := range movies {
		summaries = append(summaries, movieSummary(db, m))
	}
	return utils.SuccessResponse(c, "OK", summaries)
}

func GetMovieDetail(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	db := database.DB

	var movie model.Movie
	if err := db.Preload("Genres").First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	summary := movieSummary(db, movie)
	return utils.SuccessResponse(c, "OK", fiber.Map{
		"movie":      movie,
		"avgRating":  summary.AvgRating,
		"reviewCount": summary.ReviewCount,
	})
}

// GetTrendingMovies xếp hạng phim theo số vé bán ra 30 ngày gần nhất.
func GetTrendingMovies(c *fiber.Ctx) error {
	db := database.DB
	since := time.Now().AddDate(0, 0, -30)

	type trendingRow struct {
		MovieId     uint
		TicketsSold int64
	}
	var rows []trendingRow
	if err := db.Model(&model.Ticket{}).
		Select("showtimes.movie_id AS movie_id, COUNT(tickets.id) AS tickets_sold").
		Joins("JOIN showtimes ON showtimes.id = tickets.showtime_id").
		Joins("JOIN bookings ON bookings.id = tickets.booking_id").
		Where("bookings.status = ? AND bookings.booked_at >= ?", constants.BOOKING_PAID, since).
		Group("showtimes.movie_id").
		Order("tickets_sold DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	summaries := make([]model.MovieSummary, 0, len(rows))
	for _, row := range rows {
		var movie model.Movie
		if err := db.Preload("Genres").First(&movie, row.MovieId).Error; err != nil {
			continue
		}
		s := movieSummary(db, movie)
		s.TicketsSold = row.TicketsSold
		summaries = append(summaries, s)
	}
	return utils.SuccessResponse(c, "OK", summaries)
}

func GetReviews(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	db := database.DB

	var reviews []model.Review
	if err := db.Preload("Customer").
		Where("movie_id = ?", movieId).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	result := make([]model.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, model.ReviewResponse{
			ID:           r.ID,
			CustomerName: r.Customer.Name,
			Rating:       r.Rating,
			Content:      r.Content,
			CreatedAt:    r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return utils.SuccessResponse(c, "OK", result)
}

// CreateReview mỗi khách chỉ đánh giá một lần cho mỗi phim.
func CreateReview(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateReviewInput)
	db := database.DB

	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
	}

	var existing model.Review
	err := db.Where("customer_id = ? AND movie_id = ?", input.CustomerId, input.MovieId).
		First(&existing).Error
	if err == nil {
		return utils.FailResponse(c, "Bạn đã đánh giá phim này rồi", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	review := model.Review{
		CustomerId: input.CustomerId,
		MovieId:    input.MovieId,
		TicketId:   input.TicketId,
		Rating:     input.Rating,
		Content:    input.Content,
	}
	if err := db.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đánh giá", err)
	}

	return utils.SuccessResponse(c, "Đánh giá thành công", review)
}
