package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SuccessResponse trả về envelope thành công chuẩn.
func SuccessResponse(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// FailResponse dùng cho từ chối nghiệp vụ: HTTP 200, success=false.
func FailResponse(c *fiber.Ctx, message string, data any) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// ErrorResponse dùng cho lỗi giao thức: 400, 401, 404, 500.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   errMsg,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}
	return query
}

// ParseDate đọc chuỗi YYYY-MM-DD, trả về zero time nếu sai định dạng.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func Ptr[T any](v T) *T {
	return &v
}
