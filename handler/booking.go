package handler

import (
	"errors"
	"log"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockShowtimeTickets khoá các vé tồn kho của những ghế yêu cầu và nạp kèm
// đơn đang sở hữu từng vé.
func lockShowtimeTickets(tx *gorm.DB, showtimeId uint, seatIds []uint) ([]model.Ticket, error) {
	var tickets []model.Ticket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("showtime_id = ? AND seat_id IN ?", showtimeId, seatIds).
		Find(&tickets).Error; err != nil {
		return nil, err
	}

	for i := range tickets {
		if tickets[i].BookingId == nil {
			continue
		}
		var booking model.Booking
		if err := tx.First(&booking, *tickets[i].BookingId).Error; err == nil {
			tickets[i].Booking = &booking
		}
	}
	return tickets, nil
}

func foodLineDetails(lines []model.FoodOrderLine) []model.FoodLineDetail {
	details := make([]model.FoodLineDetail, 0, len(lines))
	for _, l := range lines {
		details = append(details, model.FoodLineDetail{
			FoodItemId: l.FoodItemId,
			Name:       l.FoodItem.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			LineTotal:  helper.LineTotal(l.UnitPrice, l.Quantity),
		})
	}
	return details
}

func ticketResponses(db *gorm.DB, tickets []model.Ticket) []model.TicketResponse {
	result := make([]model.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		var seat model.Seat
		db.First(&seat, t.SeatId)
		var showtime model.Showtime
		db.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").First(&showtime, t.ShowtimeId)

		result = append(result, model.TicketResponse{
			TicketId:   t.ID,
			SeatNumber: seat.SeatNumber,
			Price:      t.Price,
			Status:     t.Status,
			QRCode:     t.QRCode,
			MovieTitle: showtime.Movie.Title,
			Date:       showtime.Date.Format("2006-01-02"),
			StartTime:  showtime.TimeSlot.StartTime,
			RoomName:   showtime.Room.Name,
			CinemaName: showtime.Room.Cinema.Name,
			BookingId:  t.BookingId,
		})
	}
	return result
}

// CreateBooking đặt vé online: kiểm tra xung đột ghế, tính tiền vé và đồ ăn,
// áp mã khuyến mãi nếu có rồi tạo đơn ở trạng thái Chưa thanh toán.
// Toàn bộ chạy trong một transaction, ghế khoá bằng SELECT FOR UPDATE.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, input.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
	}

	tx := db.Begin()

	var showtime model.Showtime
	if err := tx.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").
		First(&showtime, input.ShowtimeId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy suất chiếu", err)
	}

	tickets, err := lockShowtimeTickets(tx, showtime.ID, input.SeatIds)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if len(tickets) != len(input.SeatIds) {
		tx.Rollback()
		return utils.FailResponse(c, "Có ghế không tồn tại trong suất chiếu này", nil)
	}

	if conflicts := helper.ConflictingSeatIds(tickets, input.SeatIds, false); len(conflicts) > 0 {
		tx.Rollback()
		return utils.FailResponse(c, "Ghế đã có người đặt, vui lòng chọn ghế khác", fiber.Map{
			"conflictingSeats": conflicts,
		})
	}

	ticketTotal := 0.0
	for _, t := range tickets {
		ticketTotal = helper.Sum(ticketTotal, t.Price)
	}

	// Đồ ăn kèm
	foodTotal := 0.0
	var foodLines []model.FoodOrderLine
	var promoFoods []helper.PromoFood
	for _, f := range input.Foods {
		var item model.FoodItem
		if err := tx.First(&item, f.FoodItemId).Error; err != nil {
			tx.Rollback()
			return utils.FailResponse(c, "Có món đồ ăn không tồn tại", nil)
		}
		foodTotal = helper.Sum(foodTotal, helper.LineTotal(item.Price, f.Quantity))
		foodLines = append(foodLines, model.FoodOrderLine{
			FoodItemId: item.ID,
			Quantity:   f.Quantity,
			UnitPrice:  item.Price,
		})
		promoFoods = append(promoFoods, helper.PromoFood{Name: item.Name, Category: item.Category})
	}

	subtotal := helper.Sum(ticketTotal, foodTotal)
	total := subtotal

	// Mã khuyến mãi chỉ được kiểm tra ở đây, lượt dùng trừ khi xác nhận thanh toán
	var promoCode *string
	if input.PromoCode != nil && *input.PromoCode != "" {
		var promo model.Promotion
		if err := tx.Where("code = ?", *input.PromoCode).First(&promo).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.FailResponse(c, "Mã khuyến mãi không tồn tại", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		ok, reason := helper.ValidatePromo(promo, helper.PromoContext{
			Now:           time.Now(),
			LoyaltyPoints: customer.LoyaltyPoints,
			Foods:         promoFoods,
		})
		if !ok {
			tx.Rollback()
			return utils.FailResponse(c, reason, nil)
		}
		discount := helper.ComputeDiscount(promo, subtotal)
		total = helper.ApplyDiscount(subtotal, discount)
		promoCode = &promo.Code
	}

	booking := model.Booking{
		CustomerId:       customer.ID,
		Status:           constants.BOOKING_UNPAID,
		TotalAmount:      total,
		OriginalSubtotal: subtotal,
		PaymentMethod:    input.PaymentMethod,
		PromoCode:        promoCode,
		BookedAt:         time.Now(),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn đặt vé", err)
	}

	for i := range tickets {
		qr := uuid.New().String()
		tickets[i].BookingId = &booking.ID
		tickets[i].QRCode = &qr
		tickets[i].Status = constants.TICKET_UNUSED
		if err := tx.Model(&model.Ticket{}).Where("id = ?", tickets[i].ID).
			Updates(map[string]interface{}{
				"booking_id": booking.ID,
				"qr_code":    qr,
				"status":     constants.TICKET_UNUSED,
			}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể gắn vé vào đơn", err)
		}
	}

	for i := range foodLines {
		foodLines[i].BookingId = booking.ID
		if err := tx.Create(&foodLines[i]).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể lưu đồ ăn kèm", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	database.InvalidateSeatMap(c.Context(), showtime.ID)

	return utils.SuccessResponse(c, "Đặt vé thành công, vui lòng thanh toán", fiber.Map{
		"bookingId":        booking.ID,
		"status":           booking.Status,
		"originalSubtotal": booking.OriginalSubtotal,
		"totalAmount":      booking.TotalAmount,
		"promoCode":        booking.PromoCode,
		"tickets":          ticketResponses(db, tickets),
	})
}

// ConfirmQRPayment khách xác nhận đã chuyển khoản: đơn chuyển sang Chờ Duyệt.
// Lượt dùng khuyến mãi trừ đúng một lần tại đây, không trừ khi tạo đơn.
func ConfirmQRPayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ConfirmPaymentInput)
	db := database.DB

	tx := db.Begin()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, input.BookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if booking.Status != constants.BOOKING_UNPAID {
		tx.Rollback()
		return utils.FailResponse(c, "Đơn không ở trạng thái chờ thanh toán", nil)
	}

	if booking.PromoCode != nil && !booking.PromoRedeemed {
		res := tx.Model(&model.Promotion{}).
			Where("code = ? AND remaining_uses > 0", *booking.PromoCode).
			UpdateColumn("remaining_uses", gorm.Expr("remaining_uses - 1"))
		if res.Error != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, res.Error)
		}
		if res.RowsAffected == 0 {
			log.Printf("Mã %s đã hết lượt khi xác nhận thanh toán đơn %d, giữ nguyên giá đã chốt", *booking.PromoCode, booking.ID)
		}
		booking.PromoRedeemed = true
	}

	booking.Status = constants.BOOKING_PENDING
	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "Đã ghi nhận thanh toán, đơn đang chờ duyệt", fiber.Map{
		"bookingId": booking.ID,
		"status":    booking.Status,
	})
}

func CheckBookingStatus(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "OK", fiber.Map{
		"bookingId":   booking.ID,
		"status":      booking.Status,
		"totalAmount": booking.TotalAmount,
	})
}

// releaseTickets gỡ toàn bộ vé khỏi đơn: xoá liên kết, trả về Chưa sử dụng,
// xoá mã QR. Trả về danh sách suất chiếu bị ảnh hưởng để xoá cache.
func releaseTickets(tx *gorm.DB, bookingId uint) ([]uint, error) {
	var tickets []model.Ticket
	if err := tx.Where("booking_id = ?", bookingId).Find(&tickets).Error; err != nil {
		return nil, err
	}

	showtimeIds := make([]uint, 0, len(tickets))
	seen := make(map[uint]bool)
	for _, t := range tickets {
		if !seen[t.ShowtimeId] {
			seen[t.ShowtimeId] = true
			showtimeIds = append(showtimeIds, t.ShowtimeId)
		}
	}

	if err := tx.Model(&model.Ticket{}).Where("booking_id = ?", bookingId).
		Updates(map[string]interface{}{
			"booking_id": nil,
			"status":     constants.TICKET_UNUSED,
			"qr_code":    nil,
		}).Error; err != nil {
		return nil, err
	}
	return showtimeIds, nil
}

func cancelBookingTx(tx *gorm.DB, booking *model.Booking) ([]uint, error) {
	showtimeIds, err := releaseTickets(tx, booking.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Where("booking_id = ?", booking.ID).Delete(&model.FoodOrderLine{}).Error; err != nil {
		return nil, err
	}
	booking.Status = constants.BOOKING_CANCELLED
	if err := tx.Save(booking).Error; err != nil {
		return nil, err
	}
	return showtimeIds, nil
}

// CancelBooking huỷ cả đơn. Đơn đã thanh toán không huỷ được.
func CancelBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CancelBookingInput)
	db := database.DB

	tx := db.Begin()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, input.BookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if ok, reason := helper.CanCancelBooking(booking.Status); !ok {
		tx.Rollback()
		return utils.FailResponse(c, reason, nil)
	}

	showtimeIds, err := cancelBookingTx(tx, &booking)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể huỷ đơn", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	for _, id := range showtimeIds {
		database.InvalidateSeatMap(c.Context(), id)
	}

	return utils.SuccessResponse(c, "Huỷ đơn thành công", fiber.Map{
		"bookingId": booking.ID,
		"status":    booking.Status,
	})
}

// CancelTicket huỷ một vé trong đơn. Vé cuối cùng thì huỷ luôn cả đơn.
func CancelTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CancelTicketInput)
	db := database.DB

	tx := db.Begin()

	var ticket model.Ticket
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ticket, input.TicketId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if ticket.BookingId == nil {
		tx.Rollback()
		return utils.FailResponse(c, "Vé không thuộc đơn đặt vé nào", nil)
	}

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, *ticket.BookingId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if ok, reason := helper.CanCancelBooking(booking.Status); !ok {
		tx.Rollback()
		return utils.FailResponse(c, reason, nil)
	}

	var remaining int64
	if err := tx.Model(&model.Ticket{}).Where("booking_id = ?", booking.ID).
		Count(&remaining).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	// Vé cuối cùng → huỷ cả đơn
	if remaining <= 1 {
		showtimeIds, err := cancelBookingTx(tx, &booking)
		if err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể huỷ đơn", err)
		}
		if err := tx.Commit().Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		for _, id := range showtimeIds {
			database.InvalidateSeatMap(c.Context(), id)
		}
		return utils.SuccessResponse(c, "Đã huỷ vé cuối cùng, đơn được huỷ theo", fiber.Map{
			"bookingCancelled": true,
			"bookingId":        booking.ID,
		})
	}

	if err := tx.Model(&model.Ticket{}).Where("id = ?", ticket.ID).
		Updates(map[string]interface{}{
			"booking_id": nil,
			"status":     constants.TICKET_UNUSED,
			"qr_code":    nil,
		}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể huỷ vé", err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	database.InvalidateSeatMap(c.Context(), ticket.ShowtimeId)

	return utils.SuccessResponse(c, "Huỷ vé thành công", fiber.Map{
		"bookingCancelled":          false,
		"bookingId":                 booking.ID,
		"remainingTicketsInBooking": remaining - 1,
	})
}

func bookingResponse(db *gorm.DB, booking model.Booking) model.BookingResponse {
	var tickets []model.Ticket
	db.Where("booking_id = ?", booking.ID).Find(&tickets)
	var lines []model.FoodOrderLine
	db.Preload("FoodItem").Where("booking_id = ?", booking.ID).Find(&lines)
	var customer model.Customer
	db.First(&customer, booking.CustomerId)

	return model.BookingResponse{
		BookingId:        booking.ID,
		Status:           booking.Status,
		TotalAmount:      booking.TotalAmount,
		OriginalSubtotal: booking.OriginalSubtotal,
		PromoCode:        booking.PromoCode,
		PaymentMethod:    booking.PaymentMethod,
		BookedAt:         booking.BookedAt,
		CustomerName:     customer.Name,
		Tickets:          ticketResponses(db, tickets),
		Foods:            foodLineDetails(lines),
	}
}

func GetBookingDetail(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "OK", bookingResponse(db, booking))
}

func GetBookingsByCustomer(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)
	db := database.DB

	var bookings model.Bookings
	if err := db.Where("customer_id = ?", customerId).
		Order("booked_at DESC").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	result := make([]model.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingResponse(db, b))
	}
	return utils.SuccessResponse(c, "OK", result)
}

// GetInvoice hoá đơn chi tiết của một đơn: từng vé, từng dòng đồ ăn,
// tiền gốc, tiền giảm và tổng phải trả.
func GetInvoice(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	detail := bookingResponse(db, booking)
	discount := helper.Sum(booking.OriginalSubtotal, -booking.TotalAmount)
	return utils.SuccessResponse(c, "OK", fiber.Map{
		"booking":        detail,
		"discountAmount": discount,
	})
}

func GetMyTickets(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)
	db := database.DB

	var tickets []model.Ticket
	if err := db.Joins("JOIN bookings ON bookings.id = tickets.booking_id").
		Where("bookings.customer_id = ?", customerId).
		Order("tickets.created_at DESC").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "OK", ticketResponses(db, tickets))
}

func GetTicketsInBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	db := database.DB

	var tickets []model.Ticket
	if err := db.Where("booking_id = ?", bookingId).Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "OK", ticketResponses(db, tickets))
}

// ApplyPromoToBooking áp (hoặc đổi) mã cho đơn chưa thanh toán. Tổng mới
// luôn tính lại từ tiền gốc đã lưu nên áp lại cùng mã không giảm chồng.
func ApplyPromoToBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.ApplyPromoInput)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if booking.Status != constants.BOOKING_UNPAID {
		return utils.FailResponse(c, "Chỉ áp mã cho đơn chưa thanh toán", nil)
	}

	var promo model.Promotion
	if err := db.Where("code = ?", input.Code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FailResponse(c, "Mã khuyến mãi không tồn tại", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	var customer model.Customer
	db.First(&customer, booking.CustomerId)
	var lines []model.FoodOrderLine
	db.Preload("FoodItem").Where("booking_id = ?", booking.ID).Find(&lines)
	promoFoods := make([]helper.PromoFood, 0, len(lines))
	for _, l := range lines {
		promoFoods = append(promoFoods, helper.PromoFood{Name: l.FoodItem.Name, Category: l.FoodItem.Category})
	}

	ok, reason := helper.ValidatePromo(promo, helper.PromoContext{
		Now:           time.Now(),
		LoyaltyPoints: customer.LoyaltyPoints,
		Foods:         promoFoods,
	})
	if !ok {
		return utils.FailResponse(c, reason, nil)
	}

	discount := helper.ComputeDiscount(promo, booking.OriginalSubtotal)
	booking.TotalAmount = helper.ApplyDiscount(booking.OriginalSubtotal, discount)
	booking.PromoCode = &promo.Code
	if err := db.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	return utils.SuccessResponse(c, "Áp mã khuyến mãi thành công", model.PromoQuoteResponse{
		Code:           promo.Code,
		Description:    promo.Description,
		DiscountType:   promo.DiscountType,
		DiscountValue:  promo.DiscountValue,
		DiscountAmount: discount,
		FinalAmount:    booking.TotalAmount,
	})
}
