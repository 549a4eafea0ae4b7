package helper

import (
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Test bcrypt hash và so khớp mật khẩu
func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("123456cn")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "123456cn", hashed)

	require.True(t, CheckPasswordHash("123456cn", hashed))
	require.False(t, CheckPasswordHash("sai_mat_khau", hashed))
}

// Test sinh và đọc lại access token
func TestAccessTokenRoundTrip(t *testing.T) {
	claim := model.TokenClaim{
		CustomerId: 7,
		Username:   "khach@example.com",
		Role:       constants.ROLE_CUSTOMER,
	}
	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(7), claims["customerId"])
	require.Equal(t, "khach@example.com", claims["username"])
	require.Equal(t, constants.ROLE_CUSTOMER, claims["role"])
}

// Token của nhân viên mang theo rạp được gán
func TestStaffTokenCarriesCinema(t *testing.T) {
	claim := model.TokenClaim{
		StaffId:  3,
		Username: "nv@cinema.vn",
		Role:     constants.ROLE_STAFF,
		CinemaId: utils.Ptr(uint(2)),
	}
	tokenString, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(3), claims["staffId"])
	require.Equal(t, float64(2), claims["cinemaId"])
}
