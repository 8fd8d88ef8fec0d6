package repository

import (
	"context"
	"regexp"
	"time"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productListLimit caps product listings, matching the upstream API.
const productListLimit = 100

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (primitive.ObjectID, error)
	Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
}

type productRepo struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) ProductRepository {
	return &productRepo{coll: db.Collection("products")}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) (primitive.ObjectID, error) {
	product.CreatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// buildProductQuery translates a ProductFilter into the Mongo query:
// exact match on the category slug, case-insensitive substring match on
// the title, combined as AND.
func buildProductQuery(filter model.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Query != "" {
		query["title"] = bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"},
		}
	}
	return query
}

func (r *productRepo) Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	cursor, err := r.coll.Find(ctx, buildProductQuery(filter), options.Find().SetLimit(productListLimit))
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
