package service

import (
	"context"
	"errors"
	"testing"

	"greenfood-api/internal/model"
	"greenfood-api/internal/ws"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func newTestOrderService(userRepo *fakeUserRepo, orderRepo *fakeOrderRepo) OrderService {
	return NewOrderService(orderRepo, userRepo, newTestHub(), zerolog.Nop())
}

func seedBuyer(t *testing.T, userRepo *fakeUserRepo, balance int64) *model.User {
	t.Helper()
	user := &model.User{
		Name:     "Budi",
		Email:    "budi@example.com",
		Role:     model.RoleUser,
		Balance:  balance,
		IsActive: true,
	}
	id, err := userRepo.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed buyer: %v", err)
	}
	user.ID = id
	return user
}

func sampleOrder(total int64, paymentMethod string) *model.Order {
	return &model.Order{
		BuyerName:    "Budi",
		BuyerEmail:   "budi@example.com",
		BuyerAddress: "Jl. Kebon Jeruk 12",
		Items: []model.OrderItem{
			{ProductID: "p1", Title: "Green Tea", Price: 10000, Quantity: 2},
		},
		Subtotal:      20000,
		DeliveryFee:   5000,
		Total:         total,
		PaymentMethod: paymentMethod,
	}
}

func TestCreateOrderGreenpayInsufficientBalance(t *testing.T) {
	userRepo := newFakeUserRepo()
	orderRepo := newFakeOrderRepo()
	svc := newTestOrderService(userRepo, orderRepo)
	ctx := context.Background()

	buyer := seedBuyer(t, userRepo, 10000)

	_, err := svc.CreateOrder(ctx, sampleOrder(15000, model.PaymentMethodGreenPay), buyer)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	stored, _ := userRepo.FindByID(ctx, buyer.ID)
	if stored.Balance != 10000 {
		t.Errorf("balance must be unchanged, got %d", stored.Balance)
	}
	if len(orderRepo.orders) != 0 {
		t.Error("no order should be stored on a failed payment")
	}
}

func TestCreateOrderGreenpaySuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	orderRepo := newFakeOrderRepo()
	svc := newTestOrderService(userRepo, orderRepo)
	ctx := context.Background()

	buyer := seedBuyer(t, userRepo, 20000)

	result, err := svc.CreateOrder(ctx, sampleOrder(15000, model.PaymentMethodGreenPay), buyer)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if result.Status != model.OrderStatusPaid {
		t.Errorf("expected status %q, got %q", model.OrderStatusPaid, result.Status)
	}

	stored, _ := userRepo.FindByID(ctx, buyer.ID)
	if stored.Balance != 5000 {
		t.Errorf("expected balance 5000, got %d", stored.Balance)
	}

	order, err := svc.GetOrder(ctx, result.ID.Hex())
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if order.BuyerID == nil || *order.BuyerID != buyer.ID {
		t.Error("order should reference the buyer")
	}
}

func TestCreateOrderCashStaysPending(t *testing.T) {
	userRepo := newFakeUserRepo()
	orderRepo := newFakeOrderRepo()
	svc := newTestOrderService(userRepo, orderRepo)
	ctx := context.Background()

	buyer := seedBuyer(t, userRepo, 20000)

	result, err := svc.CreateOrder(ctx, sampleOrder(15000, "cod"), buyer)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if result.Status != model.OrderStatusPending {
		t.Errorf("expected status %q, got %q", model.OrderStatusPending, result.Status)
	}

	stored, _ := userRepo.FindByID(ctx, buyer.ID)
	if stored.Balance != 20000 {
		t.Errorf("balance must not be touched, got %d", stored.Balance)
	}
}

func TestCreateOrderAnonymousGreenpayStaysPending(t *testing.T) {
	userRepo := newFakeUserRepo()
	orderRepo := newFakeOrderRepo()
	svc := newTestOrderService(userRepo, orderRepo)
	ctx := context.Background()

	result, err := svc.CreateOrder(ctx, sampleOrder(15000, model.PaymentMethodGreenPay), nil)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if result.Status != model.OrderStatusPending {
		t.Errorf("anonymous greenpay order must stay pending, got %q", result.Status)
	}

	order, err := svc.GetOrder(ctx, result.ID.Hex())
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if order.BuyerID != nil {
		t.Error("anonymous order must not carry a buyer id")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newTestOrderService(newFakeUserRepo(), newFakeOrderRepo())
	ctx := context.Background()

	order := sampleOrder(15000, "cod")
	order.Items = nil

	if _, err := svc.CreateOrder(ctx, order, nil); err == nil {
		t.Fatal("expected validation error for an order without items")
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc := newTestOrderService(newFakeUserRepo(), newFakeOrderRepo())
	ctx := context.Background()

	if _, err := svc.GetOrder(ctx, "not-a-hex-id"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for malformed id, got %v", err)
	}
	if _, err := svc.GetOrder(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing id, got %v", err)
	}
}
