package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetCustomerByEmail(e string) (*model.Customer, error) {
	db := database.DB
	var customer model.Customer
	if err := db.Where(&model.Customer{Email: e}).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func GetStaffByEmail(e string) (*model.Staff, error) {
	db := database.DB
	var staff model.Staff
	if err := db.Where(&model.Staff{Email: e}).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["staffId"] = tokenClaim.StaffId
	claims["role"] = tokenClaim.Role
	if tokenClaim.CinemaId != nil {
		claims["cinemaId"] = *tokenClaim.CinemaId
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["customerId"] = tokenClaim.CustomerId
	claims["staffId"] = tokenClaim.StaffId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// ClaimFromToken đọc TokenClaim từ token đã được middleware xác thực.
func ClaimFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, false
	}
	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
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
	if v, ok := claims["cinemaId"].(float64); ok {
		id := uint(v)
		tokenClaim.CinemaId = &id
	}
	return tokenClaim, true
}

// GetInfoStaffFromToken nạp lại staff từ DB để lấy vai trò và rạp hiện hành.
func GetInfoStaffFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Staff, bool, bool) {
	tokenClaim, ok := ClaimFromToken(c)
	if !ok || tokenClaim.StaffId == 0 {
		return tokenClaim, nil, false, false
	}

	var staff model.Staff
	if err := database.DB.First(&staff, tokenClaim.StaffId).Error; err != nil {
		return tokenClaim, nil, false, false
	}
	tokenClaim.Role = staff.Role
	tokenClaim.CinemaId = staff.CinemaId

	return tokenClaim,
		&staff,
		staff.Role == constants.ROLE_ADMIN,
		staff.Role == constants.ROLE_STAFF
}

func GetInfoCustomerFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Customer) {
	tokenClaim, ok := ClaimFromToken(c)
	if !ok || tokenClaim.CustomerId == 0 {
		return model.TokenClaim{}, nil
	}

	var customer model.Customer
	if err := database.DB.First(&customer, tokenClaim.CustomerId).Error; err != nil {
		return model.TokenClaim{}, nil
	}
	return tokenClaim, &customer
}
