package handlers

import (
	"net/http"
	"time"

	"MuathaqaAPI/config"
	"MuathaqaAPI/models"
	"MuathaqaAPI/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthController struct {
	collection *mongo.Collection
}

func NewAuthController() *AuthController {
	return &AuthController{
		collection: config.GetCollection(config.AdminsCollectionName()),
	}
}

func (ac *AuthController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, models.Fail("email, password and name are required"))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to hash password"))
	}

	admin := models.Admin{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Password:  hashedPassword,
		Name:      req.Name,
		Role:      "admin",
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := ac.collection.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, models.Fail("Admin with this email already exists"))
		}
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create admin"))
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to generate token"))
	}

	admin.Password = ""
	return c.JSON(http.StatusCreated, models.OK(models.LoginResponse{Token: token, Admin: admin}))
}

func (ac *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	var admin models.Admin
	if err := ac.collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
	}
	if !admin.IsActive {
		return c.JSON(http.StatusUnauthorized, models.Fail("Account is deactivated"))
	}
	if err := utils.CheckPassword(admin.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
	}

	token, err := utils.GenerateJWT(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to generate token"))
	}

	admin.Password = ""
	return c.JSON(http.StatusOK, models.OK(models.LoginResponse{Token: token, Admin: admin}))
}

func (ac *AuthController) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	adminID := c.Get("admin_id").(primitive.ObjectID)

	var admin models.Admin
	if err := ac.collection.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin); err != nil {
		return c.JSON(http.StatusNotFound, models.Fail("Admin not found"))
	}

	admin.Password = ""
	return c.JSON(http.StatusOK, models.OK(admin))
}
