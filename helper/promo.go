package helper

import (
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/shopspring/decimal"
)

// PromoFood là thông tin đồ ăn tối thiểu để xét điều kiện khuyến mãi.
type PromoFood struct {
	Name     string
	Category string
}

// PromoContext gom điều kiện của đơn hàng khi xét một mã khuyến mãi.
type PromoContext struct {
	Now           time.Time
	LoyaltyPoints int
	Foods         []PromoFood
}

// IsComboFood nhận diện combo theo loại hoặc tên sản phẩm, không phân biệt hoa thường.
func IsComboFood(f PromoFood) bool {
	return strings.Contains(strings.ToLower(f.Category), "combo") ||
		strings.Contains(strings.ToLower(f.Name), "combo")
}

func hasCombo(foods []PromoFood) bool {
	for _, f := range foods {
		if IsComboFood(f) {
			return true
		}
	}
	return false
}

// ValidatePromo xét một mã khuyến mãi theo đúng thứ tự: trạng thái,
// lượt còn lại, thời hạn, rồi điều kiện riêng của từng mã.
// Trả về (true, "") nếu hợp lệ, ngược lại kèm lý do từ chối.
func ValidatePromo(p model.Promotion, ctx PromoContext) (bool, string) {
	if p.Status != constants.PROMO_ACTIVE {
		return false, "Mã khuyến mãi không còn hiệu lực"
	}
	if p.RemainingUses <= 0 {
		return false, "Mã khuyến mãi đã hết lượt sử dụng"
	}
	// Chỉ xét thời hạn khi mã có khai báo ngày
	if !p.StartDate.IsZero() && ctx.Now.Before(p.StartDate) {
		return false, "Mã khuyến mãi chưa đến thời gian áp dụng"
	}
	if !p.EndDate.IsZero() && ctx.Now.After(p.EndDate) {
		return false, "Mã khuyến mãi đã hết hạn"
	}

	switch p.Code {
	case "KM001":
		if ctx.Now.Month() != time.December {
			return false, "Mã khuyến mãi chỉ áp dụng trong tháng 12"
		}
	case "KM003":
		if ctx.LoyaltyPoints < 20 {
			return false, "Bạn cần tối thiểu 20 điểm tích lũy để dùng mã này"
		}
	case "KM004":
		if !hasCombo(ctx.Foods) {
			return false, "Mã khuyến mãi chỉ áp dụng cho đơn có combo bắp nước"
		}
	}

	return true, ""
}

// IsPercentDiscount đọc kiểu giảm giá: chứa "%" hoặc "Phần" là giảm theo phần trăm.
func IsPercentDiscount(discountType string) bool {
	return strings.Contains(discountType, "%") ||
		strings.Contains(strings.ToLower(discountType), "phần")
}

// ComputeDiscount tính số tiền giảm cho một đơn có subtotal cho trước.
func ComputeDiscount(p model.Promotion, subtotal float64) float64 {
	sub := decimal.NewFromFloat(subtotal)
	value := decimal.NewFromFloat(p.DiscountValue)

	var discount decimal.Decimal
	if IsPercentDiscount(p.DiscountType) {
		discount = sub.Mul(value).Div(decimal.NewFromInt(100))
	} else {
		discount = value
	}

	f, _ := discount.Round(2).Float64()
	return f
}

// ApplyDiscount trả về tổng tiền sau giảm, không bao giờ âm.
// Luôn tính lại từ subtotal gốc nên áp cùng một mã nhiều lần cho
// cùng kết quả.
func ApplyDiscount(subtotal, discount float64) float64 {
	final := decimal.NewFromFloat(subtotal).Sub(decimal.NewFromFloat(discount))
	if final.IsNegative() {
		return 0
	}
	f, _ := final.Round(2).Float64()
	return f
}
