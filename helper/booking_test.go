package helper

import (
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/stretchr/testify/require"
)

func inventoryTicket(seatId uint, bookingStatus string) model.Ticket {
	t := model.Ticket{SeatId: seatId}
	if bookingStatus != "" {
		t.BookingId = utils.Ptr(uint(1))
		t.Booking = &model.Booking{Status: bookingStatus}
	}
	return t
}

// Khách online chỉ bị chặn bởi vé của đơn đã thanh toán
func TestTicketBlockedCustomerFlow(t *testing.T) {
	require.False(t, TicketBlocked(inventoryTicket(1, ""), false))
	require.False(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_UNPAID), false))
	require.False(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_PENDING), false))
	require.True(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_PAID), false))
}

// Tại quầy chặn mọi vé đã gắn đơn, kể cả chưa thanh toán
func TestTicketBlockedStaffFlow(t *testing.T) {
	require.False(t, TicketBlocked(inventoryTicket(1, ""), true))
	require.True(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_UNPAID), true))
	require.True(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_PENDING), true))
	require.True(t, TicketBlocked(inventoryTicket(1, constants.BOOKING_PAID), true))
}

func TestConflictingSeatIds(t *testing.T) {
	tickets := []model.Ticket{
		inventoryTicket(1, constants.BOOKING_PAID),
		inventoryTicket(2, constants.BOOKING_UNPAID),
		inventoryTicket(3, ""),
	}
	requested := []uint{1, 2, 3}

	// Luồng khách: chỉ ghế 1 xung đột
	require.Equal(t, []uint{1}, ConflictingSeatIds(tickets, requested, false))

	// Luồng quầy: ghế 1 và 2 xung đột
	require.Equal(t, []uint{1, 2}, ConflictingSeatIds(tickets, requested, true))

	// Không yêu cầu ghế nào đã giữ thì không có xung đột
	require.Empty(t, ConflictingSeatIds(tickets, []uint{3}, false))
}

func TestCanCancelBooking(t *testing.T) {
	ok, _ := CanCancelBooking(constants.BOOKING_UNPAID)
	require.True(t, ok)
	ok, _ = CanCancelBooking(constants.BOOKING_PENDING)
	require.True(t, ok)

	ok, reason := CanCancelBooking(constants.BOOKING_PAID)
	require.False(t, ok)
	require.Equal(t, "Không thể huỷ đơn đã thanh toán", reason)

	ok, _ = CanCancelBooking(constants.BOOKING_CANCELLED)
	require.False(t, ok)
}

func TestValidStatusTransition(t *testing.T) {
	require.True(t, ValidStatusTransition(constants.BOOKING_UNPAID, constants.BOOKING_PENDING))
	require.True(t, ValidStatusTransition(constants.BOOKING_UNPAID, constants.BOOKING_CANCELLED))
	require.True(t, ValidStatusTransition(constants.BOOKING_PENDING, constants.BOOKING_PAID))
	require.True(t, ValidStatusTransition(constants.BOOKING_PENDING, constants.BOOKING_CANCELLED))

	// Trạng thái cuối không chuyển tiếp được
	require.False(t, ValidStatusTransition(constants.BOOKING_PAID, constants.BOOKING_CANCELLED))
	require.False(t, ValidStatusTransition(constants.BOOKING_CANCELLED, constants.BOOKING_UNPAID))
	require.False(t, ValidStatusTransition(constants.BOOKING_UNPAID, constants.BOOKING_PAID))
}
