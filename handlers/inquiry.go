package handlers

import (
	"net/http"
	"time"

	"MuathaqaAPI/config"
	"MuathaqaAPI/models"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InquiryController struct {
	collection  *mongo.Collection
	propsByCode *mongo.Collection
}

func NewInquiryController() *InquiryController {
	return &InquiryController{
		collection:  config.GetCollection(config.InquiriesCollectionName()),
		propsByCode: config.GetCollection(config.PropertiesCollectionName()),
	}
}

// CreateInquiry handles POST /api/inquiries. The referenced listing must
// exist; soft-deleted listings no longer accept inquiries.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	if err := inquiry.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	count, err := ic.propsByCode.CountDocuments(ctx, bson.M{"propertyCode": inquiry.PropertyCode, "isActive": true})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to check property"))
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
	}

	inquiry.ID = primitive.NewObjectID()
	inquiry.CreatedAt = time.Now()
	if _, err := ic.collection.InsertOne(ctx, inquiry); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create inquiry"))
	}
	return c.JSON(http.StatusCreated, models.OK(inquiry))
}

// ListInquiries handles GET /api/admin/inquiries, newest first.
func (ic *InquiryController) ListInquiries(c echo.Context) error {
	ctx := c.Request().Context()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	filter := bson.M{}
	if code := c.QueryParam("propertyCode"); code != "" {
		filter["propertyCode"] = code
	}

	cursor, err := ic.collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch inquiries"))
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to decode inquiries"))
	}
	return c.JSON(http.StatusOK, models.OK(inquiries))
}
