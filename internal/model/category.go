package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name" validate:"required"`
	Slug string             `bson:"slug" json:"slug" validate:"required"`
	Icon string             `bson:"icon,omitempty" json:"icon,omitempty"`
}
