package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Planet is a single catalog entry. ID is the public lookup key, not the
// Mongo _id, which is only echoed back when the store assigned one.
type Planet struct {
	ObjectID    *primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ID          int                 `json:"id" bson:"id" validate:"gte=0"`
	Name        string              `json:"name" bson:"name" validate:"required"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Image       string              `json:"image,omitempty" bson:"image,omitempty"`
	Velocity    string              `json:"velocity,omitempty" bson:"velocity,omitempty"`
	Distance    string              `json:"distance,omitempty" bson:"distance,omitempty"`
}
