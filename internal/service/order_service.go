package service

import (
	"context"
	"errors"
	"fmt"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/internal/ws"
	"greenfood-api/pkg/validator"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientBalance = errors.New("insufficient greenpay balance")
)

type OrderService interface {
	// CreateOrder persists a checkout. When the buyer is resolved and pays
	// with greenpay, the wallet debit happens first as one atomic
	// conditional update; the order is stored as "paid" only if the debit
	// held. buyer may be nil (anonymous checkout).
	CreateOrder(ctx context.Context, order *model.Order, buyer *model.User) (*CreateOrderResult, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
}

type CreateOrderResult struct {
	ID     primitive.ObjectID `json:"id"`
	Status model.OrderStatus  `json:"status"`
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	hub       *ws.Hub
	log       zerolog.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, hub *ws.Hub, log zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		hub:       hub,
		log:       log,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, order *model.Order, buyer *model.User) (*CreateOrderResult, error) {
	if errs := validator.ValidateStruct(order); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// Totals arithmetic is stored as submitted; the server does not verify
	// subtotal/discount/total consistency and does not touch stock.
	order.Status = model.OrderStatusPending
	order.BuyerID = nil

	if buyer != nil {
		order.BuyerID = &buyer.ID

		if order.PaymentMethod == model.PaymentMethodGreenPay {
			err := s.userRepo.DebitBalance(ctx, buyer.ID, order.Total)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrInsufficientBalance
				}
				return nil, err
			}
			order.Status = model.OrderStatusPaid
		}
	}

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	s.log.Info().
		Str("order_id", id.Hex()).
		Str("status", string(order.Status)).
		Int64("total", order.Total).
		Msg("order created")

	s.hub.Notify("order_created", map[string]interface{}{
		"order_id": id.Hex(),
		"status":   order.Status,
		"total":    order.Total,
		"buyer":    order.BuyerName,
	})

	return &CreateOrderResult{ID: id, Status: order.Status}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}
