package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TopupStatus string

const (
	TopupStatusPending  TopupStatus = "pending"
	TopupStatusApproved TopupStatus = "approved"
	TopupStatusRejected TopupStatus = "rejected"
)

// MinTopupAmount is the smallest accepted top-up in whole currency units.
const MinTopupAmount int64 = 1000

// TopupRequest is a user-submitted claim of an out-of-band payment,
// awaiting admin review. Only pending requests may transition; approved
// and rejected are terminal.
type TopupRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Email     string             `bson:"email" json:"email"`
	Amount    int64              `bson:"amount" json:"amount" validate:"gte=1000"`
	Proof     string             `bson:"proof" json:"proof"`
	Status    TopupStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
