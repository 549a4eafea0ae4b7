package handler

import (
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func promoFoodsOfBooking(db *gorm.DB, bookingId uint) []helper.PromoFood {
	var lines []model.FoodOrderLine
	db.Preload("FoodItem").Where("booking_id = ?", bookingId).Find(&lines)
	foods := make([]helper.PromoFood, 0, len(lines))
	for _, l := range lines {
		foods = append(foods, helper.PromoFood{Name: l.FoodItem.Name, Category: l.FoodItem.Category})
	}
	return foods
}

// CheckPromo báo giá một mã khuyến mãi: hợp lệ hay không và giảm bao nhiêu.
// Không sửa dữ liệu, không trừ lượt dùng.
func CheckPromo(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CheckPromoInput)
	db := database.DB

	var promo model.Promotion
	if err := db.Where("code = ?", input.Code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.FailResponse(c, "Mã khuyến mãi không tồn tại", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	ctx := helper.PromoContext{Now: time.Now()}
	subtotal := input.Subtotal
	if input.BookingId != nil {
		var booking model.Booking
		if err := db.First(&booking, *input.BookingId).Error; err == nil {
			subtotal = booking.OriginalSubtotal
			ctx.Foods = promoFoodsOfBooking(db, booking.ID)
			var customer model.Customer
			if err := db.First(&customer, booking.CustomerId).Error; err == nil {
				ctx.LoyaltyPoints = customer.LoyaltyPoints
			}
		}
	}

	if ok, reason := helper.ValidatePromo(promo, ctx); !ok {
		return utils.FailResponse(c, reason, nil)
	}

	discount := helper.ComputeDiscount(promo, subtotal)
	return utils.SuccessResponse(c, "Mã khuyến mãi hợp lệ", model.PromoQuoteResponse{
		Code:           promo.Code,
		Description:    promo.Description,
		DiscountType:   promo.DiscountType,
		DiscountValue:  promo.DiscountValue,
		DiscountAmount: discount,
		FinalAmount:    helper.ApplyDiscount(subtotal, discount),
	})
}

// GetAvailablePromos liệt kê các mã khách này đang đủ điều kiện dùng.
func GetAvailablePromos(c *fiber.Ctx) error {
	db := database.DB

	ctx := helper.PromoContext{Now: time.Now()}
	if _, customer := helper.GetInfoCustomerFromToken(c); customer != nil {
		ctx.LoyaltyPoints = customer.LoyaltyPoints
	}
	if bookingId := c.QueryInt("bookingId"); bookingId > 0 {
		ctx.Foods = promoFoodsOfBooking(db, uint(bookingId))
	}

	var promos model.Promotions
	if err := db.Where("status = ?", constants.PROMO_ACTIVE).Find(&promos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	available := make([]model.Promotion, 0, len(promos))
	for _, p := range promos {
		if ok, _ := helper.ValidatePromo(p, ctx); ok {
			available = append(available, p)
		}
	}
	return utils.SuccessResponse(c, "OK", available)
}
