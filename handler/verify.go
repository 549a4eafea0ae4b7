package handler

import (
	"errors"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func verifiedInfo(db *gorm.DB, ticket model.Ticket) model.VerifiedTicketInfo {
	var seat model.Seat
	db.First(&seat, ticket.SeatId)
	var showtime model.Showtime
	db.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").First(&showtime, ticket.ShowtimeId)

	info := model.VerifiedTicketInfo{
		TicketId:   ticket.ID,
		MovieTitle: showtime.Movie.Title,
		SeatNumber: seat.SeatNumber,
		Date:       showtime.Date.Format("2006-01-02"),
		StartTime:  showtime.TimeSlot.StartTime,
		RoomName:   showtime.Room.Name,
		CinemaName: showtime.Room.Cinema.Name,
	}
	if ticket.BookingId != nil {
		var booking model.Booking
		if err := db.Preload("Customer").First(&booking, *ticket.BookingId).Error; err == nil {
			info.CustomerName = booking.Customer.Name
		}
	}
	return info
}

// verifyTicket soát vé bằng mã QR. Vé chỉ dùng một lần; nhân viên gắn rạp
// không soát được vé của rạp khác. requirePaid bật thêm điều kiện đơn
// sở hữu vé phải đã thanh toán (luồng soát trên web).
func verifyTicket(c *fiber.Ctx, requirePaid bool) error {
	input := c.Locals("input").(model.VerifyTicketInput)
	db := database.DB

	var ticket model.Ticket
	if err := db.Where("qr_code = ?", input.QRCode).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FailResponse(c, "Mã QR không hợp lệ", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	// Kiểm tra phạm vi rạp trước, không đổi trạng thái vé khi từ chối
	_, staff, _, _ := helper.GetInfoStaffFromToken(c)
	if staff != nil && staff.CinemaId != nil {
		var showtime model.Showtime
		if err := db.Preload("Room").First(&showtime, ticket.ShowtimeId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		if showtime.Room.CinemaId != *staff.CinemaId {
			return utils.FailResponse(c, "Vé thuộc rạp khác, bạn không thể soát vé này", nil)
		}
	}

	if ticket.Status == constants.TICKET_USED {
		return utils.FailResponse(c, "Vé này đã được sử dụng rồi", nil)
	}

	if requirePaid {
		if ticket.BookingId == nil {
			return utils.FailResponse(c, "Vé không thuộc đơn đặt vé nào", nil)
		}
		var booking model.Booking
		if err := db.First(&booking, *ticket.BookingId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		if booking.Status != constants.BOOKING_PAID {
			return utils.FailResponse(c, "Đơn của vé chưa được thanh toán", nil)
		}
	}

	if err := db.Model(&model.Ticket{}).Where("id = ?", ticket.ID).
		Update("status", constants.TICKET_USED).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật trạng thái vé", err)
	}

	return utils.SuccessResponse(c, "Soát vé thành công", verifiedInfo(db, ticket))
}

func VerifyTicket(c *fiber.Ctx) error {
	return verifyTicket(c, false)
}

// VerifyTicketWeb như VerifyTicket nhưng yêu cầu đơn đã thanh toán.
func VerifyTicketWeb(c *fiber.Ctx) error {
	return verifyTicket(c, true)
}

// GetTicketQR trả ảnh QR PNG của một vé để in hoặc tải về.
func GetTicketQR(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(int)
	db := database.DB

	var ticket model.Ticket
	if err := db.First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if ticket.QRCode == nil {
		return utils.FailResponse(c, "Vé chưa được gắn vào đơn đặt vé nào", nil)
	}

	png, err := utils.GenerateQRCode(*ticket.QRCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo mã QR", err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
