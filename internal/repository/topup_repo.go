package repository

import (
	"context"
	"time"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TopupRepository interface {
	Create(ctx context.Context, topup *model.TopupRequest) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.TopupRequest, error)
	// FindAll lists requests newest first, optionally filtered by status.
	FindAll(ctx context.Context, status model.TopupStatus) ([]model.TopupRequest, error)
	// Resolve flips a pending request to the given terminal status. The
	// pending filter makes the flip the idempotency guard: ErrNotFound
	// means the record is absent or already resolved.
	Resolve(ctx context.Context, id primitive.ObjectID, status model.TopupStatus) error
}

type topupRepo struct {
	coll *mongo.Collection
}

func NewTopupRepo(db *mongo.Database) TopupRepository {
	return &topupRepo{coll: db.Collection("topup_requests")}
}

func (r *topupRepo) Create(ctx context.Context, topup *model.TopupRequest) (primitive.ObjectID, error) {
	now := time.Now()
	topup.CreatedAt = now
	topup.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, topup)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *topupRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TopupRequest, error) {
	var topup model.TopupRequest
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&topup)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &topup, nil
}

func (r *topupRepo) FindAll(ctx context.Context, status model.TopupStatus) ([]model.TopupRequest, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var topups []model.TopupRequest
	if err := cursor.All(ctx, &topups); err != nil {
		return nil, err
	}
	return topups, nil
}

func (r *topupRepo) Resolve(ctx context.Context, id primitive.ObjectID, status model.TopupStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": model.TopupStatusPending},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
