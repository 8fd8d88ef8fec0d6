package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product belongs to a category by slug; the reference is not verified at
// write time (matching upstream behaviour).
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       int64              `bson:"price" json:"price" validate:"gte=0"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Rating      float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// ProductFilter narrows a product listing. Category is an exact slug
// match, Query a case-insensitive substring match on the title.
type ProductFilter struct {
	Category string
	Query    string
}
