package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessResponse(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, "OK", fiber.Map{"bookingId": 1})
	})
	require.Equal(t, 200, status)
	require.Equal(t, true, body["success"])
	require.Equal(t, "OK", body["message"])
	require.NotNil(t, body["data"])
}

// Từ chối nghiệp vụ vẫn là HTTP 200, chỉ success=false
func TestFailResponseIsHTTP200(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return FailResponse(c, "Ghế đã có người đặt, vui lòng chọn ghế khác", nil)
	})
	require.Equal(t, 200, status)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Ghế đã có người đặt, vui lòng chọn ghế khác", body["message"])
	_, hasData := body["data"]
	require.False(t, hasData)
}

func TestErrorResponse(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy đơn đặt vé", nil)
	})
	require.Equal(t, 404, status)
	require.Equal(t, false, body["success"])
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-24")
	require.NoError(t, err)
	require.Equal(t, 2025, d.Year())
	require.Equal(t, 12, int(d.Month()))
	require.Equal(t, 24, d.Day())

	_, err = ParseDate("24/12/2025")
	require.Error(t, err)
}
