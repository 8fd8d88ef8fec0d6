package repository

import (
	"context"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.Category, error)
}

type categoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepository {
	return &categoryRepo{coll: db.Collection("categories")}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]model.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
