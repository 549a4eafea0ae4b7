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
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func setAuthCookies(c *fiber.Ctx, token, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

// Login đăng nhập chung: tìm khách hàng theo email trước, không có thì tìm nhân viên.
func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if customer != nil {
		if !helper.CheckPasswordHash(input.Password, customer.Password) {
			return utils.FailResponse(c, "Email hoặc mật khẩu không đúng", nil)
		}

		tokenClaim := model.TokenClaim{
			CustomerId: customer.ID,
			Username:   customer.Email,
			Role:       constants.ROLE_CUSTOMER,
		}
		token, err := helper.GenerateAccessToken(tokenClaim)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		setAuthCookies(c, token, refreshToken)

		return utils.SuccessResponse(c, "Đăng nhập thành công", fiber.Map{
			"accessToken": token,
			"user": fiber.Map{
				"id":       customer.ID,
				"name":     customer.Name,
				"email":    customer.Email,
				"userType": "customer",
			},
		})
	}

	staff, err := helper.GetStaffByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if staff == nil {
		return utils.FailResponse(c, "Email hoặc mật khẩu không đúng", nil)
	}
	if !helper.CheckPasswordHash(input.Password, staff.Password) {
		return utils.FailResponse(c, "Email hoặc mật khẩu không đúng", nil)
	}

	tokenClaim := model.TokenClaim{
		StaffId:  staff.ID,
		Username: staff.Email,
		Role:     staff.Role,
		CinemaId: staff.CinemaId,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	setAuthCookies(c, token, refreshToken)

	return utils.SuccessResponse(c, "Đăng nhập thành công", fiber.Map{
		"accessToken": token,
		"user": fiber.Map{
			"id":       staff.ID,
			"name":     staff.Name,
			"email":    staff.Email,
			"role":     staff.Role,
			"cinemaId": staff.CinemaId,
			"userType": "staff",
		},
	})
}

func Register(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterInput)
	db := database.DB

	existing, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	if existing != nil {
		return utils.FailResponse(c, "Email đã được đăng ký", nil)
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	var customer model.Customer
	if err := copier.Copy(&customer, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	customer.Password = hashed
	customer.RegisteredAt = time.Now()
	if input.DateOfBirth != nil {
		if dob, err := utils.ParseDate(*input.DateOfBirth); err == nil {
			customer.DateOfBirth = &dob
		}
	}

	if err := db.Create(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo tài khoản", err)
	}

	return utils.SuccessResponse(c, "Đăng ký thành công", fiber.Map{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type refreshRequest struct {
			RefreshToken string `json:"refreshToken"`
		}
		var req refreshRequest
		if err := c.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", nil)
	}

	tokenClaim := model.TokenClaim{}
	if v, ok := claims["customerId"].(float64); ok {
		tokenClaim.CustomerId = uint(v)
	}
	if v, ok := claims["staffId"].(float64); ok {
		tokenClaim.StaffId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		tokenClaim.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		tokenClaim.Role = v
	}

	newAccessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	setAuthCookies(c, newAccessToken, newRefreshToken)

	return utils.SuccessResponse(c, "Làm mới token thành công", model.TokenData{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

func GetProfile(c *fiber.Ctx) error {
	userId := uint(c.Locals("inputId").(int))
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, userId).Error; err == nil {
		var profile model.ProfileResponse
		copier.Copy(&profile, &customer)
		profile.UserType = "customer"
		return utils.SuccessResponse(c, "OK", profile)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	var staff model.Staff
	if err := db.First(&staff, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy người dùng", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "OK", model.ProfileResponse{
		ID:       staff.ID,
		Name:     staff.Name,
		Email:    staff.Email,
		Phone:    staff.Phone,
		UserType: "staff",
		CinemaId: staff.CinemaId,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userId := uint(c.Locals("inputId").(int))
	input := c.Locals("input").(model.UpdateProfileInput)
	db := database.DB

	var customer model.Customer
	if err := db.First(&customer, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Gender != nil {
		customer.Gender = input.Gender
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.DateOfBirth != nil {
		if dob, err := utils.ParseDate(*input.DateOfBirth); err == nil {
			customer.DateOfBirth = &dob
		}
	}

	if err := db.Save(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật hồ sơ", err)
	}

	var profile model.ProfileResponse
	copier.Copy(&profile, &customer)
	profile.UserType = "customer"
	return utils.SuccessResponse(c, "Cập nhật hồ sơ thành công", profile)
}

func ChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ChangePasswordInput)
	db := database.DB

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}

	if input.UserType == "customer" {
		var customer model.Customer
		if err := db.First(&customer, input.UserId).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy khách hàng", err)
		}
		if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
			return utils.FailResponse(c, "Mật khẩu hiện tại không đúng", nil)
		}
		customer.Password = hashed
		if err := db.Save(&customer).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
		}
		return utils.SuccessResponse(c, "Đổi mật khẩu thành công", nil)
	}

	var staff model.Staff
	if err := db.First(&staff, input.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy nhân viên", err)
	}
	if !helper.CheckPasswordHash(input.CurrentPassword, staff.Password) {
		return utils.FailResponse(c, "Mật khẩu hiện tại không đúng", nil)
	}
	staff.Password = hashed
	if err := db.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "Đổi mật khẩu thành công", nil)
}
