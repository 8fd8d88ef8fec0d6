package service

import (
	"context"
	"errors"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"
	"greenfood-api/internal/ws"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidAmount  = errors.New("amount must be a positive number")
	ErrAmountTooSmall = errors.New("minimum top-up amount is 1000")
	ErrTopupNotFound  = errors.New("top-up request not found")
	ErrTopupResolved  = errors.New("top-up request has already been resolved")
)

// TopupResolution reports the outcome of an approve/reject call. Status
// is "approved", "already_approved" or "rejected".
type TopupResolution struct {
	Status string              `json:"status"`
	Topup  *model.TopupRequest `json:"topup"`
}

type WalletService interface {
	RequestTopup(ctx context.Context, user *model.User, amount int64, proof string) (*model.TopupRequest, error)
	ListTopups(ctx context.Context, status model.TopupStatus) ([]model.TopupRequest, error)
	ApproveTopup(ctx context.Context, id string) (*TopupResolution, error)
	RejectTopup(ctx context.Context, id string) (*TopupResolution, error)
	// Balance re-reads the stored balance; token or cached values are
	// never trusted.
	Balance(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type walletService struct {
	topupRepo repository.TopupRepository
	userRepo  repository.UserRepository
	hub       *ws.Hub
	log       zerolog.Logger
}

func NewWalletService(topupRepo repository.TopupRepository, userRepo repository.UserRepository, hub *ws.Hub, log zerolog.Logger) WalletService {
	return &walletService{
		topupRepo: topupRepo,
		userRepo:  userRepo,
		hub:       hub,
		log:       log,
	}
}

func (s *walletService) RequestTopup(ctx context.Context, user *model.User, amount int64, proof string) (*model.TopupRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < model.MinTopupAmount {
		return nil, ErrAmountTooSmall
	}

	topup := &model.TopupRequest{
		UserID: user.ID,
		Email:  user.Email,
		Amount: amount,
		Proof:  proof,
		Status: model.TopupStatusPending,
	}

	id, err := s.topupRepo.Create(ctx, topup)
	if err != nil {
		return nil, err
	}
	topup.ID = id

	s.log.Info().Str("email", user.Email).Int64("amount", amount).Msg("top-up requested")

	s.hub.Notify("topup_requested", map[string]interface{}{
		"topup_id": id.Hex(),
		"email":    user.Email,
		"amount":   amount,
	})

	return topup, nil
}

func (s *walletService) ListTopups(ctx context.Context, status model.TopupStatus) ([]model.TopupRequest, error) {
	topups, err := s.topupRepo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	if topups == nil {
		topups = []model.TopupRequest{}
	}
	return topups, nil
}

func (s *walletService) ApproveTopup(ctx context.Context, id string) (*TopupResolution, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTopupNotFound
	}

	topup, err := s.topupRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTopupNotFound
		}
		return nil, err
	}

	switch topup.Status {
	case model.TopupStatusApproved:
		// Idempotent short-circuit: the wallet was already credited.
		return &TopupResolution{Status: "already_approved", Topup: topup}, nil
	case model.TopupStatusRejected:
		return nil, ErrTopupResolved
	}

	// The pending->approved flip is the idempotency guard: two concurrent
	// approvals race on this conditional update and only one wins, so the
	// credit below can never run twice.
	if err := s.topupRepo.Resolve(ctx, oid, model.TopupStatusApproved); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			resolved, rerr := s.topupRepo.FindByID(ctx, oid)
			if rerr == nil && resolved.Status == model.TopupStatusApproved {
				return &TopupResolution{Status: "already_approved", Topup: resolved}, nil
			}
			return nil, ErrTopupResolved
		}
		return nil, err
	}

	if err := s.userRepo.CreditBalance(ctx, topup.UserID, topup.Amount); err != nil {
		// The record is marked approved but the credit failed; surface the
		// error so an operator can reconcile from the log.
		s.log.Error().Err(err).
			Str("topup_id", id).
			Str("user_id", topup.UserID.Hex()).
			Int64("amount", topup.Amount).
			Msg("top-up approved but wallet credit failed")
		return nil, err
	}

	topup.Status = model.TopupStatusApproved

	s.log.Info().Str("topup_id", id).Int64("amount", topup.Amount).Msg("top-up approved")

	s.hub.Notify("topup_approved", map[string]interface{}{
		"topup_id": id,
		"email":    topup.Email,
		"amount":   topup.Amount,
	})

	return &TopupResolution{Status: "approved", Topup: topup}, nil
}

func (s *walletService) RejectTopup(ctx context.Context, id string) (*TopupResolution, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrTopupNotFound
	}

	topup, err := s.topupRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTopupNotFound
		}
		return nil, err
	}

	switch topup.Status {
	case model.TopupStatusRejected:
		return &TopupResolution{Status: "already_rejected", Topup: topup}, nil
	case model.TopupStatusApproved:
		return nil, ErrTopupResolved
	}

	if err := s.topupRepo.Resolve(ctx, oid, model.TopupStatusRejected); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTopupResolved
		}
		return nil, err
	}

	topup.Status = model.TopupStatusRejected

	s.log.Info().Str("topup_id", id).Msg("top-up rejected")

	return &TopupResolution{Status: "rejected", Topup: topup}, nil
}

func (s *walletService) Balance(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Balance, nil
}
