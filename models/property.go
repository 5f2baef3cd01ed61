package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText is an Arabic/English text pair. English is the canonical
// value; Arabic is optional.
type LocalizedText struct {
	Ar string `bson:"ar,omitempty" json:"ar,omitempty"`
	En string `bson:"en" json:"en"`
}

// Features holds per-type optional attributes. Which fields are meaningful
// depends on the property type; no cross-field rules are enforced.
type Features struct {
	Floors      int     `bson:"floors,omitempty" json:"floors,omitempty"`
	LivingRooms int     `bson:"livingRooms,omitempty" json:"livingRooms,omitempty"`
	Majlis      int     `bson:"majlis,omitempty" json:"majlis,omitempty"`
	Kitchens    int     `bson:"kitchens,omitempty" json:"kitchens,omitempty"`
	Facade      string  `bson:"facade,omitempty" json:"facade,omitempty"`
	StreetWidth float64 `bson:"streetWidth,omitempty" json:"streetWidth,omitempty"`
}

type Advertiser struct {
	Number  string `bson:"number" json:"number"`
	License string `bson:"license" json:"license"`
}

type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PropertyCode string             `bson:"propertyCode" json:"propertyCode"`
	Title        LocalizedText      `bson:"title" json:"title"`
	Location     LocalizedText      `bson:"location" json:"location"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	District     string             `bson:"district,omitempty" json:"district,omitempty"`
	Type         string             `bson:"type" json:"type"`
	Purpose      string             `bson:"purpose" json:"purpose"`
	Usage        string             `bson:"usage" json:"usage"`
	Price        float64            `bson:"price" json:"price"`
	Area         float64            `bson:"area" json:"area"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms"`
	Features     Features           `bson:"features,omitempty" json:"features,omitempty"`
	Services     []string           `bson:"services,omitempty" json:"services,omitempty"`
	Advertiser   Advertiser         `bson:"advertiser" json:"advertiser"`
	Images       []string           `bson:"images,omitempty" json:"images,omitempty"`
	Video        string             `bson:"video,omitempty" json:"video,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var PropertyTypes = []string{"apartment", "villa", "duplex", "floor", "building", "land", "office", "shop", "farm", "resthouse"}

var Purposes = []string{"sale", "rent", "investment"}

var Usages = []string{"Residential", "Commercial"}

func isOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Validate checks required fields, numeric ranges and enum membership.
// The returned error names the offending field.
func (p *Property) Validate() error {
	if p.Title.En == "" {
		return errors.New("title.en is required")
	}
	if p.Location.En == "" {
		return errors.New("location.en is required")
	}
	if p.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if p.Area < 0 {
		return errors.New("area must be non-negative")
	}
	if p.Bedrooms < 0 {
		return errors.New("bedrooms must be non-negative")
	}
	if p.Bathrooms < 0 {
		return errors.New("bathrooms must be non-negative")
	}
	if !isOneOf(p.Type, PropertyTypes) {
		return fmt.Errorf("type must be one of %v", PropertyTypes)
	}
	if !isOneOf(p.Purpose, Purposes) {
		return fmt.Errorf("purpose must be one of %v", Purposes)
	}
	if !isOneOf(p.Usage, Usages) {
		return fmt.Errorf("usage must be one of %v", Usages)
	}
	if p.City != "" && CityByCode(p.City) == nil {
		return fmt.Errorf("city %q is not a known city code", p.City)
	}
	if p.Advertiser.Number == "" {
		return errors.New("advertiser.number is required")
	}
	if p.Advertiser.License == "" {
		return errors.New("advertiser.license is required")
	}
	return nil
}

// UpdatePatch builds the $set document for an update. The property code is
// immutable and the soft-delete flag only changes through the delete path,
// so neither appears in the patch regardless of what the caller sent.
func (p *Property) UpdatePatch() bson.M {
	return bson.M{
		"title":       p.Title,
		"location":    p.Location,
		"city":        p.City,
		"district":    p.District,
		"type":        p.Type,
		"purpose":     p.Purpose,
		"usage":       p.Usage,
		"price":       p.Price,
		"area":        p.Area,
		"bedrooms":    p.Bedrooms,
		"bathrooms":   p.Bathrooms,
		"features":    p.Features,
		"services":    p.Services,
		"advertiser":  p.Advertiser,
		"images":      p.Images,
		"video":       p.Video,
		"description": p.Description,
		"updatedAt":   time.Now(),
	}
}
