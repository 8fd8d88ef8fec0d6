package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

const PaymentMethodGreenPay = "greenpay"

type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id" validate:"required"`
	Title     string `bson:"title" json:"title" validate:"required"`
	Price     int64  `bson:"price" json:"price" validate:"gte=0"`
	Quantity  int    `bson:"quantity" json:"quantity" validate:"gte=1"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is a checkout document. BuyerID is nil for anonymous checkout.
// Subtotal/Discount/DeliveryFee/Total are stored exactly as submitted;
// the server does not re-derive them from the items.
type Order struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	BuyerID       *primitive.ObjectID `bson:"buyer_id,omitempty" json:"buyer_id,omitempty"`
	BuyerName     string              `bson:"buyer_name" json:"buyer_name" validate:"required"`
	BuyerEmail    string              `bson:"buyer_email" json:"buyer_email" validate:"required,email"`
	BuyerPhone    string              `bson:"buyer_phone,omitempty" json:"buyer_phone,omitempty"`
	BuyerAddress  string              `bson:"buyer_address" json:"buyer_address" validate:"required"`
	Items         []OrderItem         `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal      int64               `bson:"subtotal" json:"subtotal" validate:"gte=0"`
	Discount      int64               `bson:"discount" json:"discount" validate:"gte=0"`
	DeliveryFee   int64               `bson:"delivery_fee" json:"delivery_fee" validate:"gte=0"`
	Total         int64               `bson:"total" json:"total" validate:"gte=0"`
	Status        OrderStatus         `bson:"status" json:"status"`
	CouponCode    string              `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
	PaymentMethod string              `bson:"payment_method" json:"payment_method"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
