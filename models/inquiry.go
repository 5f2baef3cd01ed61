package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry is a visitor's interest in a listing, referenced by property code.
type Inquiry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyCode string             `bson:"propertyCode" json:"propertyCode"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Message      string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (i *Inquiry) Validate() error {
	if i.PropertyCode == "" {
		return errors.New("propertyCode is required")
	}
	if i.Name == "" {
		return errors.New("name is required")
	}
	if i.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}
