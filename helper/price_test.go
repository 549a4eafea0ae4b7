package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test tính giá vé với phụ thu ngày và phụ thu ghế
func TestTicketPrice(t *testing.T) {
	// 100.000 + 10% ngày + 20% ghế = 130.000
	require.Equal(t, 130000.0, TicketPrice(100000, 10, 20))

	// Không phụ thu
	require.Equal(t, 100000.0, TicketPrice(100000, 0, 0))

	// Chỉ phụ thu ngày
	require.Equal(t, 110000.0, TicketPrice(100000, 10, 0))

	// Chỉ phụ thu ghế
	require.Equal(t, 120000.0, TicketPrice(100000, 0, 20))
}

// Test phụ thu lẻ không bị lệch xu khi tính bằng decimal
func TestTicketPriceExactDecimal(t *testing.T) {
	// 90.000 + 5% + 7,5% = 90.000 + 4.500 + 6.750 = 101.250
	require.Equal(t, 101250.0, TicketPrice(90000, 5, 7.5))

	// Giá lẻ xu phải làm tròn 2 chữ số
	require.Equal(t, 115.76, TicketPrice(100.66, 5, 10))
}

func TestLineTotal(t *testing.T) {
	require.Equal(t, 178000.0, LineTotal(89000, 2))
	require.Equal(t, 0.0, LineTotal(89000, 0))
}

func TestSum(t *testing.T) {
	require.Equal(t, 224000.0, Sum(130000, 45000, 49000))
	require.Equal(t, 0.0, Sum())

	// Cộng dồn số float không tích luỹ sai số
	require.Equal(t, 0.3, Sum(0.1, 0.2))
}
