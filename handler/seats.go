package handler

import (
	"encoding/json"
	"errors"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// buildSeatMap dựng sơ đồ ghế của một suất chiếu. Giá từng ô lấy từ
// snapshot trên vé tồn kho, không tính lại.
func buildSeatMap(db *gorm.DB, showtimeId uint, staffMode bool) ([]model.SeatStatusResponse, error) {
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return nil, err
	}

	var seats []model.Seat
	if err := db.Preload("SeatType").
		Where("room_id = ?", showtime.RoomId).
		Order("row, \"column\"").
		Find(&seats).Error; err != nil {
		return nil, err
	}

	var tickets []model.Ticket
	if err := db.Preload("Booking").
		Where("showtime_id = ?", showtimeId).
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	ticketBySeat := make(map[uint]model.Ticket, len(tickets))
	for _, t := range tickets {
		ticketBySeat[t.SeatId] = t
	}

	result := make([]model.SeatStatusResponse, 0, len(seats))
	for _, seat := range seats {
		row := model.SeatStatusResponse{
			SeatId:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Row:        seat.Row,
			Column:     seat.Column,
			IsAisle:    seat.Status == constants.SEAT_AISLE,
		}
		if seat.SeatType != nil {
			row.SeatType = seat.SeatType.Name
		}
		if t, ok := ticketBySeat[seat.ID]; ok {
			row.Price = t.Price
			row.IsBooked = helper.TicketBlocked(t, staffMode)
		}
		result = append(result, row)
	}
	return result, nil
}

func getSeats(c *fiber.Ctx, staffMode bool) error {
	showtimeId := uint(c.Locals("inputId").(int))
	db := database.DB

	if cached := database.GetSeatMapCache(c.Context(), showtimeId, staffMode); cached != "" {
		return utils.SuccessResponse(c, "OK", json.RawMessage(cached))
	}

	seatMap, err := buildSeatMap(db, showtimeId, staffMode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy suất chiếu", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if payload, err := json.Marshal(seatMap); err == nil {
		database.SetSeatMapCache(c.Context(), showtimeId, staffMode, string(payload))
	}
	return utils.SuccessResponse(c, "OK", seatMap)
}

// GetSeats sơ đồ ghế cho khách online: ghế chỉ bị khoá khi đơn giữ nó
// đã thanh toán.
func GetSeats(c *fiber.Ctx) error {
	return getSeats(c, false)
}

// GetSeatsStaff sơ đồ ghế cho quầy vé: khoá mọi ghế đã gắn đơn.
func GetSeatsStaff(c *fiber.Ctx) error {
	return getSeats(c, true)
}
