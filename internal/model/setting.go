package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SettingKeyQris is the single key used by the settings collection today.
const SettingKeyQris = "qris"

// Setting is a keyed singleton record, upserted by key.
type Setting struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key   string             `bson:"key" json:"key"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
