package handler

import (
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func showtimeResponse(s model.Showtime) model.ShowtimeResponse {
	return model.ShowtimeResponse{
		ID:         s.ID,
		Date:       s.Date,
		StartTime:  s.TimeSlot.StartTime,
		BasePrice:  s.BasePrice,
		MovieTitle: s.Movie.Title,
		RoomName:   s.Room.Name,
		CinemaName: s.Room.Cinema.Name,
		DayType:    s.DayType.Name,
	}
}

// GetShowtimesByMovie liệt kê suất chiếu sắp tới của một phim.
func GetShowtimesByMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	db := database.DB

	query := db.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").Preload("DayType").
		Where("movie_id = ?", movieId)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày phải có định dạng YYYY-MM-DD", err)
		}
		query = query.Where("date = ?", date)
	} else {
		today := time.Now().Truncate(24 * time.Hour)
		query = query.Where("date >= ?", today)
	}
	if cinemaId := c.QueryInt("cinemaId"); cinemaId > 0 {
		query = query.Joins("JOIN rooms ON rooms.id = showtimes.room_id").
			Where("rooms.cinema_id = ?", cinemaId)
	}

	var showtimes []model.Showtime
	if err := query.Order("date, time_slot_id").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	result := make([]model.ShowtimeResponse, 0, len(showtimes))
	for _, s := range showtimes {
		result = append(result, showtimeResponse(s))
	}
	return utils.SuccessResponse(c, "OK", result)
}

// GetShowtimesForBooking suất chiếu hôm nay cho màn hình bán vé tại quầy,
// giới hạn theo rạp của nhân viên nếu có.
func GetShowtimesForBooking(c *fiber.Ctx) error {
	_, staff, _, _ := helper.GetInfoStaffFromToken(c)
	if staff == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, nil)
	}
	db := database.DB

	date := time.Now().Truncate(24 * time.Hour)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày phải có định dạng YYYY-MM-DD", err)
		}
		date = parsed
	}

	query := db.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").Preload("DayType").
		Where("date = ?", date)
	if staff.CinemaId != nil {
		query = query.Joins("JOIN rooms ON rooms.id = showtimes.room_id").
			Where("rooms.cinema_id = ?", *staff.CinemaId)
	}

	var showtimes []model.Showtime
	if err := query.Order("time_slot_id").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	result := make([]model.ShowtimeResponse, 0, len(showtimes))
	for _, s := range showtimes {
		result = append(result, showtimeResponse(s))
	}
	return utils.SuccessResponse(c, "OK", result)
}

// CreateShowtime tạo suất chiếu và sinh sẵn kho vé cho mọi ghế ngồi được
// của phòng, mỗi vé mang giá đã tính phụ thu ngày và loại ghế.
func CreateShowtime(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateShowtimeInput)
	db := database.DB

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày chiếu phải có định dạng YYYY-MM-DD", err)
	}

	var movie model.Movie
	if err := db.First(&movie, input.MovieId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phim", err)
	}
	var room model.Room
	if err := db.First(&room, input.RoomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy phòng chiếu", err)
	}
	var dayType model.DayType
	if err := db.First(&dayType, input.DayTypeId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy loại ngày", err)
	}
	var timeSlot model.TimeSlot
	if err := db.First(&timeSlot, input.TimeSlotId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khung giờ", err)
	}

	// Không cho hai suất trùng phòng, ngày và khung giờ
	var dup model.Showtime
	err = db.Where("room_id = ? AND date = ? AND time_slot_id = ?", input.RoomId, date, input.TimeSlotId).
		First(&dup).Error
	if err == nil {
		return utils.FailResponse(c, "Phòng đã có suất chiếu ở khung giờ này", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	var seats []model.Seat
	if err := db.Preload("SeatType").
		Where("room_id = ? AND status = ?", input.RoomId, constants.SEAT_USABLE).
		Find(&seats).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if len(seats) == 0 {
		return utils.FailResponse(c, "Phòng chiếu chưa có sơ đồ ghế", nil)
	}

	tx := db.Begin()
	showtime := model.Showtime{
		Date:       date,
		BasePrice:  input.BasePrice,
		MovieId:    input.MovieId,
		RoomId:     input.RoomId,
		TimeSlotId: input.TimeSlotId,
		DayTypeId:  input.DayTypeId,
	}
	if err := tx.Create(&showtime).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo suất chiếu", err)
	}

	tickets := make([]model.Ticket, 0, len(seats))
	for _, seat := range seats {
		seatPct := 0.0
		if seat.SeatType != nil {
			seatPct = seat.SeatType.SurchargePct
		}
		tickets = append(tickets, model.Ticket{
			ShowtimeId: showtime.ID,
			SeatId:     seat.ID,
			Price:      helper.TicketPrice(input.BasePrice, dayType.SurchargePct, seatPct),
			Status:     constants.TICKET_UNUSED,
		})
	}
	if err := tx.CreateInBatches(&tickets, 200).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể sinh kho vé cho suất chiếu", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "Tạo suất chiếu thành công", fiber.Map{
		"showtimeId":   showtime.ID,
		"ticketsTotal": len(tickets),
	})
}
