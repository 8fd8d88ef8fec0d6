package repository

import (
	"context"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*model.Setting, error)
	Upsert(ctx context.Context, key, image string) error
}

type settingRepo struct {
	coll *mongo.Collection
}

func NewSettingRepo(db *mongo.Database) SettingRepository {
	return &settingRepo{coll: db.Collection("settings")}
}

func (r *settingRepo) FindByKey(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepo) Upsert(ctx context.Context, key, image string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"key": key},
		bson.M{"$set": bson.M{"key": key, "image": image}},
		options.Update().SetUpsert(true),
	)
	return err
}
