package helper

import (
	"testing"
	"time"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/stretchr/testify/require"
)

func activePromo(code string) model.Promotion {
	return model.Promotion{
		Code:          code,
		DiscountType:  "Phần trăm (%)",
		DiscountValue: 10,
		RemainingUses: 5,
		Status:        constants.PROMO_ACTIVE,
	}
}

// Test thứ tự kiểm tra: trạng thái trước, rồi lượt dùng, rồi thời hạn
func TestValidatePromoOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := PromoContext{Now: now}

	p := activePromo("KM002")
	p.Status = constants.PROMO_INACTIVE
	p.RemainingUses = 0
	ok, reason := ValidatePromo(p, ctx)
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi không còn hiệu lực", reason)

	p = activePromo("KM002")
	p.RemainingUses = 0
	p.EndDate = now.AddDate(0, 0, -1)
	ok, reason = ValidatePromo(p, ctx)
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi đã hết lượt sử dụng", reason)

	p = activePromo("KM002")
	p.EndDate = now.AddDate(0, 0, -1)
	ok, reason = ValidatePromo(p, ctx)
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi đã hết hạn", reason)
}

// Mã không khai báo thời hạn thì không xét thời hạn
func TestValidatePromoZeroDates(t *testing.T) {
	ctx := PromoContext{Now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	ok, reason := ValidatePromo(activePromo("KM002"), ctx)
	require.True(t, ok)
	require.Empty(t, reason)
}

func TestValidatePromoWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	ctx := PromoContext{Now: now}

	p := activePromo("KM002")
	p.StartDate = now.AddDate(0, 0, 1)
	ok, reason := ValidatePromo(p, ctx)
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi chưa đến thời gian áp dụng", reason)

	p = activePromo("KM002")
	p.StartDate = now.AddDate(0, 0, -1)
	p.EndDate = now.AddDate(0, 0, 1)
	ok, _ = ValidatePromo(p, ctx)
	require.True(t, ok)
}

// KM001 chỉ áp dụng trong tháng 12
func TestValidatePromoDecemberOnly(t *testing.T) {
	p := activePromo("KM001")

	ok, reason := ValidatePromo(p, PromoContext{Now: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)})
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi chỉ áp dụng trong tháng 12", reason)

	ok, _ = ValidatePromo(p, PromoContext{Now: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)})
	require.True(t, ok)
}

// KM003 cần tối thiểu 20 điểm tích lũy
func TestValidatePromoLoyalty(t *testing.T) {
	p := activePromo("KM003")
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	ok, _ := ValidatePromo(p, PromoContext{Now: now, LoyaltyPoints: 19})
	require.False(t, ok)

	ok, _ = ValidatePromo(p, PromoContext{Now: now, LoyaltyPoints: 20})
	require.True(t, ok)
}

// KM004 cần đơn có combo, nhận diện theo loại hoặc tên, không phân biệt hoa thường
func TestValidatePromoComboRequired(t *testing.T) {
	p := activePromo("KM004")
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	ok, reason := ValidatePromo(p, PromoContext{Now: now})
	require.False(t, ok)
	require.Equal(t, "Mã khuyến mãi chỉ áp dụng cho đơn có combo bắp nước", reason)

	ok, _ = ValidatePromo(p, PromoContext{Now: now, Foods: []PromoFood{
		{Name: "Bắp rang bơ", Category: "Bắp"},
	}})
	require.False(t, ok)

	ok, _ = ValidatePromo(p, PromoContext{Now: now, Foods: []PromoFood{
		{Name: "COMBO bắp nước", Category: "Bắp"},
	}})
	require.True(t, ok)

	ok, _ = ValidatePromo(p, PromoContext{Now: now, Foods: []PromoFood{
		{Name: "Bắp nước cỡ lớn", Category: "Combo"},
	}})
	require.True(t, ok)
}

func TestIsComboFood(t *testing.T) {
	require.True(t, IsComboFood(PromoFood{Name: "Combo 2 người", Category: "Bắp"}))
	require.True(t, IsComboFood(PromoFood{Name: "Bắp nước", Category: "COMBO"}))
	require.False(t, IsComboFood(PromoFood{Name: "Nước ngọt", Category: "Nước"}))
}

func TestIsPercentDiscount(t *testing.T) {
	require.True(t, IsPercentDiscount("Phần trăm (%)"))
	require.True(t, IsPercentDiscount("%"))
	require.True(t, IsPercentDiscount("Giảm theo phần trăm"))
	require.False(t, IsPercentDiscount("Tiền mặt"))
}

func TestComputeDiscount(t *testing.T) {
	percent := model.Promotion{DiscountType: "Phần trăm (%)", DiscountValue: 10}
	require.Equal(t, 22400.0, ComputeDiscount(percent, 224000))

	flat := model.Promotion{DiscountType: "Tiền mặt", DiscountValue: 20000}
	require.Equal(t, 20000.0, ComputeDiscount(flat, 224000))
}

// Tổng sau giảm không bao giờ âm
func TestApplyDiscountFloor(t *testing.T) {
	require.Equal(t, 201600.0, ApplyDiscount(224000, 22400))
	require.Equal(t, 0.0, ApplyDiscount(15000, 20000))
}

// Áp lại cùng mã từ tiền gốc cho đúng một kết quả, không giảm chồng
func TestApplyPromoIdempotent(t *testing.T) {
	p := activePromo("KM002")
	subtotal := 224000.0

	first := ApplyDiscount(subtotal, ComputeDiscount(p, subtotal))
	second := ApplyDiscount(subtotal, ComputeDiscount(p, subtotal))
	require.Equal(t, first, second)
}
