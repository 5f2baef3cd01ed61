package handlers

import (
	"net/http"
	"time"

	"MuathaqaAPI/config"
	"MuathaqaAPI/models"
	"MuathaqaAPI/query"
	"MuathaqaAPI/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const listCacheTTL = 60 * time.Second

type PropertyController struct {
	collection *mongo.Collection
}

func NewPropertyController() *PropertyController {
	return &PropertyController{
		collection: config.GetCollection(config.PropertiesCollectionName()),
	}
}

// ListProperties handles GET /api/properties. Filter parameters are parsed
// defensively, the predicate always excludes soft-deleted records, and the
// response carries the pagination envelope. Results are cached briefly in
// Redis keyed by the sorted parameter set.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	params := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	cacheKey := utils.GenerateQueryCacheKey("properties", params)

	var cached models.ListResponse
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	f := query.ParseFilters(c.QueryParams())
	filter := f.Build()

	total, err := pc.collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to count properties"))
	}

	cursor, err := pc.collection.Find(ctx, filter, f.FindOptions())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch properties"))
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to decode properties"))
	}

	resp := models.ListResponse{
		Success:    true,
		Data:       properties,
		Pagination: models.NewPagination(total, f.Page, f.Limit),
	}
	if err := utils.SetCached(ctx, cacheKey, resp, listCacheTTL); err != nil {
		c.Logger().Warnf("failed to cache property list: %v", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// SearchProperties handles GET /api/properties/search?q=. Same envelope as
// ListProperties with the free-text OR-predicate.
func (pc *PropertyController) SearchProperties(c echo.Context) error {
	return pc.ListProperties(c)
}

// GetProperty handles GET /api/properties/:code. Soft-deleted records stay
// retrievable by code; only list queries hide them.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	code := c.Param("code")

	var property models.Property
	err := pc.collection.FindOne(ctx, bson.M{"propertyCode": code}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
		}
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch property"))
	}
	return c.JSON(http.StatusOK, models.OK(property))
}

// CreateProperty handles POST /api/admin/properties. A missing or
// non-canonical property code is replaced by the next sequential code. The
// unique index turns a generation race into a duplicate-key error.
func (pc *PropertyController) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	property.ID = primitive.NilObjectID
	property.IsActive = true
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	if err := property.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	if !utils.IsValidPropertyCode(property.PropertyCode) {
		codes, err := pc.collection.Distinct(ctx, "propertyCode", bson.M{})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Fail("Failed to scan property codes"))
		}
		existing := make([]string, 0, len(codes))
		for _, v := range codes {
			if s, ok := v.(string); ok {
				existing = append(existing, s)
			}
		}
		property.PropertyCode = utils.NextPropertyCode(existing)
	}

	if _, err := pc.collection.InsertOne(ctx, property); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, models.Fail("Property code already exists"))
		}
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to create property"))
	}

	if err := utils.InvalidateCached(ctx, "properties"); err != nil {
		c.Logger().Warnf("failed to invalidate property list cache: %v", err)
	}

	if err := pc.collection.FindOne(ctx, bson.M{"propertyCode": property.PropertyCode}).Decode(&property); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch created property"))
	}
	return c.JSON(http.StatusCreated, models.OK(property))
}

// UpdateProperty handles PUT /api/admin/properties/:code. The property code
// is immutable: any code in the patch is silently dropped.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	code := c.Param("code")

	var existing models.Property
	err := pc.collection.FindOne(ctx, bson.M{"propertyCode": code}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
		}
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch property"))
	}

	var update models.Property
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	update.PropertyCode = existing.PropertyCode
	update.IsActive = existing.IsActive
	if err := update.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	}

	_, err = pc.collection.UpdateOne(ctx, bson.M{"propertyCode": code}, bson.M{"$set": update.UpdatePatch()})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to update property"))
	}

	if err := utils.InvalidateCached(ctx, "properties"); err != nil {
		c.Logger().Warnf("failed to invalidate property list cache: %v", err)
	}

	var updated models.Property
	if err := pc.collection.FindOne(ctx, bson.M{"propertyCode": code}).Decode(&updated); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to fetch updated property"))
	}
	return c.JSON(http.StatusOK, models.OK(updated))
}

// DeleteProperty handles DELETE /api/admin/properties/:code. Deletion is a
// soft update: the record stays in the store with isActive=false and list
// queries stop returning it.
func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	code := c.Param("code")

	res, err := pc.collection.UpdateOne(
		ctx,
		bson.M{"propertyCode": code},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Fail("Failed to delete property"))
	}
	if res.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Fail("Property not found"))
	}

	if err := utils.InvalidateCached(ctx, "properties"); err != nil {
		c.Logger().Warnf("failed to invalidate property list cache: %v", err)
	}

	return c.JSON(http.StatusOK, models.Response{Success: true, Message: "Property deleted successfully"})
}
