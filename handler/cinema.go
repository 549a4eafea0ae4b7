package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCinemas(c *fiber.Ctx) error {
	db := database.DB

	var cinemas model.Cinemas
	if err := db.Preload("Rooms").Find(&cinemas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "OK", cinemas)
}

func GetFoods(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.FoodItem{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var foods model.FoodItems
	if err := query.Order("category, name").Find(&foods).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SERVER, err)
	}
	return utils.SuccessResponse(c, "OK", foods)
}
