package routes

import (
	"MuathaqaAPI/handlers"
	"MuathaqaAPI/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	properties := handlers.NewPropertyController()
	auth := handlers.NewAuthController()
	inquiries := handlers.NewInquiryController()

	api := e.Group("/api")

	api.GET("/properties", properties.ListProperties)
	api.GET("/properties/search", properties.SearchProperties)
	api.GET("/properties/:code", properties.GetProperty)

	api.GET("/cities", handlers.ListCities)
	api.GET("/cities/:code", handlers.GetCity)

	api.POST("/inquiries", inquiries.CreateInquiry)

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/auth/profile", auth.GetProfile, middleware.JWTMiddleware())

	admin := api.Group("/admin", middleware.JWTMiddleware())
	admin.POST("/properties", properties.CreateProperty)
	admin.PUT("/properties/:code", properties.UpdateProperty)
	admin.DELETE("/properties/:code", properties.DeleteProperty)
	admin.GET("/inquiries", inquiries.ListInquiries)
}
