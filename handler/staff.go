package handler

import (
	"errors"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDashboard số liệu trong ngày cho màn hình nhân viên.
func GetDashboard(c *fiber.Ctx) error {
	staffId := c.Locals("inputId").(int)
	db := database.DB

	var staff model.Staff
	if err := db.Preload("Cinema").First(&staff, staffId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy nhân viên", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)

	dash := model.DashboardResponse{StaffName: staff.Name}
	if staff.Cinema != nil {
		dash.CinemaName = staff.Cinema.Name
	}

	showtimeQuery := db.Model(&model.Showtime{}).Where("date = ?", today)
	if staff.CinemaId != nil {
		showtimeQuery = showtimeQuery.Joins("JOIN rooms ON rooms.id = showtimes.room_id").
			Where("rooms.cinema_id = ?", *staff.CinemaId)
	}
	showtimeQuery.Count(&dash.TodayShowtimes)

	db.Model(&model.Booking{}).
		Where("booked_at >= ? AND booked_at < ?", today, tomorrow).
		Count(&dash.TodayBookings)
	db.Model(&model.Booking{}).
		Where("status = ?", constants.BOOKING_PENDING).
		Count(&dash.PendingBookings)
	db.Model(&model.Ticket{}).
		Joins("JOIN bookings ON bookings.id = tickets.booking_id").
		Where("bookings.status = ? AND bookings.booked_at >= ? AND bookings.booked_at < ?",
			constants.BOOKING_PAID, today, tomorrow).
		Count(&dash.TodayTicketsSold)
	db.Model(&model.Booking{}).
		Where("status = ? AND booked_at >= ? AND booked_at < ?", constants.BOOKING_PAID, today, tomorrow).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&dash.TodayRevenue)

	return utils.SuccessResponse(c, "OK", dash)
}

// CreateOfflineBooking bán vé tại quầy: tìm hoặc tạo khách theo số điện
// thoại, đơn ghi nhận đã thanh toán ngay, giá vé lấy nguyên snapshot tồn kho.
// Tại quầy chặn mọi ghế đã gắn đơn, kể cả đơn chưa thanh toán.
func CreateOfflineBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOfflineBookingInput)
	db := database.DB

	tx := db.Begin()

	var showtime model.Showtime
	if err := tx.First(&showtime, input.ShowtimeId).Error; err != nil {
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
	if conflicts := helper.ConflictingSeatIds(tickets, input.SeatIds, true); len(conflicts) > 0 {
		tx.Rollback()
		return utils.FailResponse(c, "Ghế đã có người đặt, vui lòng chọn ghế khác", fiber.Map{
			"conflictingSeats": conflicts,
		})
	}

	// Tìm hoặc tạo khách hàng theo số điện thoại
	var customer model.Customer
	err = tx.Where("phone = ?", input.CustomerPhone).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = model.Customer{
			Name:         input.CustomerName,
			Email:        "khach_" + input.CustomerPhone + "@offline.local",
			Phone:        input.CustomerPhone,
			Password:     uuid.New().String(),
			RegisteredAt: time.Now(),
		}
		if err := tx.Create(&customer).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo khách hàng", err)
		}
	} else if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	total := 0.0
	for _, t := range tickets {
		total = helper.Sum(total, t.Price)
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Tiền mặt"
	}
	booking := model.Booking{
		CustomerId:       customer.ID,
		Status:           constants.BOOKING_PAID,
		TotalAmount:      total,
		OriginalSubtotal: total,
		PaymentMethod:    paymentMethod,
		BookedAt:         time.Now(),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn đặt vé", err)
	}

	for i := range tickets {
		qr := uuid.New().String()
		tickets[i].QRCode = &qr
		tickets[i].BookingId = &booking.ID
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

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	database.InvalidateSeatMap(c.Context(), showtime.ID)

	return utils.SuccessResponse(c, "Bán vé thành công", fiber.Map{
		"bookingId":   booking.ID,
		"status":      booking.Status,
		"totalAmount": booking.TotalAmount,
		"customerId":  customer.ID,
		"tickets":     ticketResponses(db, tickets),
	})
}

// GetBookings danh sách đơn cho nhân viên, lọc theo trạng thái và ngày.
func GetBookings(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày phải có định dạng YYYY-MM-DD", err)
		}
		query = query.Where("booked_at >= ? AND booked_at < ?", date, date.AddDate(0, 0, 1))
	}
	if phone := c.Query("phone"); phone != "" {
		query = query.Joins("JOIN customers ON customers.id = bookings.customer_id").
			Where("customers.phone LIKE ?", "%"+phone+"%")
	}

	var totalCount int64
	query.Count(&totalCount)

	limit := c.QueryInt("limit", 20)
	page := c.QueryInt("page", 1)
	query = utils.ApplyPagination(query, &limit, &page)

	var bookings model.Bookings
	if err := query.Order("booked_at DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	result := make([]model.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingResponse(db, b))
	}
	return utils.SuccessResponse(c, "OK", model.ResponseCustom{
		Rows:       result,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

// UpdateBookingStatus duyệt đơn theo bảng chuyển trạng thái. Khi đơn sang
// Đã Thanh toán thì gửi email xác nhận kèm mã QR cho khách.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateBookingStatusInput)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if input.Status == constants.BOOKING_CANCELLED {
		// Huỷ qua cập nhật trạng thái cũng phải trả ghế về kho
		return CancelBookingAsStaff(c, &booking)
	}

	if !helper.ValidStatusTransition(booking.Status, input.Status) {
		return utils.FailResponse(c, "Không thể chuyển đơn từ '"+booking.Status+"' sang '"+input.Status+"'", nil)
	}

	booking.Status = input.Status
	if err := db.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if input.Status == constants.BOOKING_PAID {
		sendPaidConfirmation(db, booking)
	}

	return utils.SuccessResponse(c, "Cập nhật trạng thái đơn thành công", fiber.Map{
		"bookingId": booking.ID,
		"status":    booking.Status,
	})
}

func CancelBookingAsStaff(c *fiber.Ctx, booking *model.Booking) error {
	db := database.DB

	if ok, reason := helper.CanCancelBooking(booking.Status); !ok {
		return utils.FailResponse(c, reason, nil)
	}

	tx := db.Begin()
	showtimeIds, err := cancelBookingTx(tx, booking)
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

func sendPaidConfirmation(db *gorm.DB, booking model.Booking) {
	var customer model.Customer
	if err := db.First(&customer, booking.CustomerId).Error; err != nil {
		return
	}
	var tickets []model.Ticket
	db.Where("booking_id = ?", booking.ID).Find(&tickets)
	if len(tickets) == 0 {
		return
	}

	var showtime model.Showtime
	db.Preload("Movie").Preload("Room.Cinema").Preload("TimeSlot").First(&showtime, tickets[0].ShowtimeId)

	var seatNames []string
	var qrPNGs [][]byte
	for _, t := range tickets {
		var seat model.Seat
		if err := db.First(&seat, t.SeatId).Error; err == nil {
			seatNames = append(seatNames, seat.SeatNumber)
		}
		if t.QRCode != nil {
			if png, err := utils.GenerateQRCode(*t.QRCode, 256); err == nil {
				qrPNGs = append(qrPNGs, png)
			}
		}
	}

	utils.SendBookingConfirmationEmail(customer.Email, utils.BookingConfirmationData{
		BookingId:   booking.ID,
		MovieName:   showtime.Movie.Title,
		CinemaName:  showtime.Room.Cinema.Name,
		RoomName:    showtime.Room.Name,
		Showtime:    showtime.Date.Format("2006-01-02") + " " + showtime.TimeSlot.StartTime,
		Seats:       strings.Join(seatNames, ", "),
		TotalAmount: booking.TotalAmount,
	}, qrPNGs)
}

// GetVerifiedTickets vé đã soát trong ngày.
func GetVerifiedTickets(c *fiber.Ctx) error {
	db := database.DB

	today := time.Now().Truncate(24 * time.Hour)
	var tickets []model.Ticket
	if err := db.Where("status = ? AND updated_at >= ?", constants.TICKET_USED, today).
		Order("updated_at DESC").
		Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "OK", ticketResponses(db, tickets))
}

func GetTicketStatistics(c *fiber.Ctx) error {
	db := database.DB

	var stats model.TicketStatisticsResponse
	db.Model(&model.Ticket{}).Where("booking_id IS NOT NULL").Count(&stats.TotalTickets)
	db.Model(&model.Ticket{}).Where("booking_id IS NOT NULL AND status = ?", constants.TICKET_USED).
		Count(&stats.UsedTickets)
	stats.UnusedTickets = stats.TotalTickets - stats.UsedTickets

	today := time.Now().Truncate(24 * time.Hour)
	db.Model(&model.Ticket{}).
		Where("status = ? AND updated_at >= ?", constants.TICKET_USED, today).
		Count(&stats.VerifiedToday)

	return utils.SuccessResponse(c, "OK", stats)
}

// GetRevenueByDate doanh thu theo từng ngày trong khoảng, chỉ tính đơn
// đã thanh toán.
func GetRevenueByDate(c *fiber.Ctx) error {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	start, err := utils.ParseDate(startStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "startDate phải có định dạng YYYY-MM-DD", err)
	}
	end, err := utils.ParseDate(endStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate phải có định dạng YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate phải sau startDate", errors.New("invalid range"))
	}

	db := database.DB
	rows := make([]model.RevenueRow, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		next := d.AddDate(0, 0, 1)
		row := model.RevenueRow{Date: d.Format("2006-01-02")}

		db.Model(&model.Booking{}).
			Where("status = ? AND booked_at >= ? AND booked_at < ?", constants.BOOKING_PAID, d, next).
			Count(&row.Bookings)
		db.Model(&model.Ticket{}).
			Joins("JOIN bookings ON bookings.id = tickets.booking_id").
			Where("bookings.status = ? AND bookings.booked_at >= ? AND bookings.booked_at < ?",
				constants.BOOKING_PAID, d, next).
			Count(&row.TicketsSold)
		db.Model(&model.Booking{}).
			Where("status = ? AND booked_at >= ? AND booked_at < ?", constants.BOOKING_PAID, d, next).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&row.TotalRevenue)
		db.Model(&model.FoodOrderLine{}).
			Joins("JOIN bookings ON bookings.id = food_order_lines.booking_id").
			Where("bookings.status = ? AND bookings.booked_at >= ? AND bookings.booked_at < ?",
				constants.BOOKING_PAID, d, next).
			Select("COALESCE(SUM(food_order_lines.unit_price * food_order_lines.quantity), 0)").
			Scan(&row.FoodRevenue)

		rows = append(rows, row)
	}

	return utils.SuccessResponse(c, "OK", rows)
}
