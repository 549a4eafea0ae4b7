package helper

import (
	"github.com/shopspring/decimal"
)

// TicketPrice tính giá vé: giá gốc cộng phụ thu theo loại ngày và loại ghế.
// Tính bằng decimal để không lệch xu, làm tròn 2 chữ số.
func TicketPrice(basePrice, dayPct, seatPct float64) float64 {
	base := decimal.NewFromFloat(basePrice)
	hundred := decimal.NewFromInt(100)

	daySurcharge := base.Mul(decimal.NewFromFloat(dayPct)).Div(hundred)
	seatSurcharge := base.Mul(decimal.NewFromFloat(seatPct)).Div(hundred)

	total := base.Add(daySurcharge).Add(seatSurcharge)
	f, _ := total.Round(2).Float64()
	return f
}

// LineTotal tính tiền một dòng đồ ăn.
func LineTotal(unitPrice float64, quantity int) float64 {
	total := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
	f, _ := total.Round(2).Float64()
	return f
}

// Sum cộng danh sách tiền bằng decimal.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Round(2).Float64()
	return f
}
