package helper

import (
	"cinema_booking/constants"
	"cinema_booking/model"
)

// TicketBlocked cho biết vé tồn kho này đã bị giữ hay chưa.
// Luồng khách online chỉ coi là giữ khi đơn sở hữu đã thanh toán;
// luồng tại quầy chặn mọi vé đã gắn đơn để tránh bán trùng với
// đơn đang chờ xử lý.
func TicketBlocked(t model.Ticket, staffMode bool) bool {
	if t.BookingId == nil {
		return false
	}
	if staffMode {
		return true
	}
	return t.Booking != nil && t.Booking.Status == constants.BOOKING_PAID
}

// ConflictingSeatIds trả về các ghế đã bị giữ trong danh sách ghế yêu cầu.
// tickets phải preload Booking. Có ghế xung đột thì từ chối cả yêu cầu,
// không đặt một phần.
func ConflictingSeatIds(tickets []model.Ticket, requested []uint, staffMode bool) []uint {
	blocked := make(map[uint]bool)
	for _, t := range tickets {
		if TicketBlocked(t, staffMode) {
			blocked[t.SeatId] = true
		}
	}

	var conflicts []uint
	for _, seatId := range requested {
		if blocked[seatId] {
			conflicts = append(conflicts, seatId)
		}
	}
	return conflicts
}

// CanCancelBooking kiểm tra đơn còn huỷ được không.
func CanCancelBooking(status string) (bool, string) {
	switch status {
	case constants.BOOKING_PAID:
		return false, "Không thể huỷ đơn đã thanh toán"
	case constants.BOOKING_CANCELLED:
		return false, "Đơn đã được huỷ trước đó"
	default:
		return true, ""
	}
}

// ValidStatusTransition là bảng chuyển trạng thái đơn hợp lệ.
// Đã thanh toán và Đã huỷ là trạng thái cuối.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case constants.BOOKING_UNPAID:
		return to == constants.BOOKING_PENDING || to == constants.BOOKING_CANCELLED
	case constants.BOOKING_PENDING:
		return to == constants.BOOKING_PAID || to == constants.BOOKING_CANCELLED
	default:
		return false
	}
}
