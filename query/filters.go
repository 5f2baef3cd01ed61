// Package query translates listing filter parameters into a MongoDB
// predicate, sort specification and page window.
package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filters is the optional filter set for a listing query. Zero values mean
// "no constraint"; negative numeric filters are treated as absent.
type Filters struct {
	Type      string
	Purpose   string
	Usage     string
	City      string
	Search    string
	MinPrice  float64
	MaxPrice  float64
	MinArea   float64
	MaxArea   float64
	Bedrooms  int
	Bathrooms int
	SortBy    string
	SortOrder string
	Page      int
	Limit     int

	hasMinPrice  bool
	hasMaxPrice  bool
	hasMinArea   bool
	hasMaxArea   bool
	hasBedrooms  bool
	hasBathrooms bool
}

// ParseFilters reads filter parameters from untrusted query-string input.
// Non-numeric page/limit values fall back to defaults; a zero or negative
// limit is clamped to the default so pagination arithmetic never divides
// by zero.
func ParseFilters(values url.Values) Filters {
	f := Filters{
		Type:      values.Get("type"),
		Purpose:   values.Get("purpose"),
		Usage:     values.Get("usage"),
		City:      values.Get("city"),
		Search:    values.Get("q"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}

	if v := values.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MinPrice = n
			f.hasMinPrice = true
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MaxPrice = n
			f.hasMaxPrice = true
		}
	}
	if v := values.Get("minArea"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MinArea = n
			f.hasMinArea = true
		}
	}
	if v := values.Get("maxArea"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			f.MaxArea = n
			f.hasMaxArea = true
		}
	}
	if v := values.Get("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Bedrooms = n
			f.hasBedrooms = true
		}
	}
	if v := values.Get("bathrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Bathrooms = n
			f.hasBathrooms = true
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Page = n
		}
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Build produces the store predicate. All supplied filters are AND-combined
// and inactive records are always excluded.
func (f Filters) Build() bson.M {
	q := bson.M{"isActive": true}

	if f.Type != "" {
		q["type"] = f.Type
	}
	if f.Purpose != "" {
		q["purpose"] = f.Purpose
	}
	if f.Usage != "" {
		q["usage"] = f.Usage
	}
	var orClauses []bson.A
	if f.City != "" {
		// Newer records carry a structured city code; older ones only have
		// free-text locations. Match either representation.
		orClauses = append(orClauses, bson.A{
			bson.M{"city": strings.ToLower(f.City)},
			bson.M{"location.en": bson.M{"$regex": regexp.QuoteMeta(f.City), "$options": "i"}},
		})
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		orClauses = append(orClauses, bson.A{
			bson.M{"title.en": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"title.ar": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"location.en": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"location.ar": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"propertyCode": bson.M{"$regex": pattern, "$options": "i"}},
		})
	}
	switch len(orClauses) {
	case 1:
		q["$or"] = orClauses[0]
	case 2:
		q["$and"] = bson.A{bson.M{"$or": orClauses[0]}, bson.M{"$or": orClauses[1]}}
	}
	if f.hasBedrooms {
		q["bedrooms"] = bson.M{"$gte": f.Bedrooms}
	}
	if f.hasBathrooms {
		q["bathrooms"] = bson.M{"$gte": f.Bathrooms}
	}
	if f.hasMinPrice {
		q["price"] = bson.M{"$gte": f.MinPrice}
	}
	if f.hasMaxPrice {
		if existing, ok := q["price"].(bson.M); ok {
			existing["$lte"] = f.MaxPrice
		} else {
			q["price"] = bson.M{"$lte": f.MaxPrice}
		}
	}
	if f.hasMinArea {
		q["area"] = bson.M{"$gte": f.MinArea}
	}
	if f.hasMaxArea {
		if existing, ok := q["area"].(bson.M); ok {
			existing["$lte"] = f.MaxArea
		} else {
			q["area"] = bson.M{"$lte": f.MaxArea}
		}
	}
	return q
}

var sortableFields = map[string]string{
	"price":     "price",
	"area":      "area",
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
	"bedrooms":  "bedrooms",
}

// FindOptions returns the sort and page window for the query. Unknown sort
// fields fall back to createdAt descending. _id is always appended as a
// tiebreaker so records sharing a sort value keep a stable order across
// page windows.
func (f Filters) FindOptions() *options.FindOptions {
	field, ok := sortableFields[f.SortBy]
	if !ok {
		field = "createdAt"
	}
	order := -1
	if f.SortOrder == "asc" {
		order = 1
	}
	skip := (f.Page - 1) * f.Limit
	return options.Find().
		SetSort(bson.D{{Key: field, Value: order}, {Key: "_id", Value: order}}).
		SetSkip(int64(skip)).
		SetLimit(int64(f.Limit))
}
