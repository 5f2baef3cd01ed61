package handlers

import (
	"net/http"

	"MuathaqaAPI/models"

	"github.com/labstack/echo/v4"
)

// ListCities handles GET /api/cities.
func ListCities(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OK(models.Cities))
}

// GetCity handles GET /api/cities/:code.
func GetCity(c echo.Context) error {
	city := models.CityByCode(c.Param("code"))
	if city == nil {
		return c.JSON(http.StatusNotFound, models.Fail("City not found"))
	}
	return c.JSON(http.StatusOK, models.OK(city))
}
