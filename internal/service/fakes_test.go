package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"greenfood-api/internal/model"
	"greenfood-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the conditional-update semantics
// of the Mongo implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}

	id := primitive.NewObjectID()
	clone := *user
	clone.ID = id
	r.users[id] = &clone
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) DebitBalance(ctx context.Context, id primitive.ObjectID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok || user.Balance < amount {
		return repository.ErrNotFound
	}
	user.Balance -= amount
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) CreditBalance(ctx context.Context, id primitive.ObjectID, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Balance += amount
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, email, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			user.Role = role
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*model.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *model.Order) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	clone := *order
	clone.ID = id
	r.orders[id] = &clone
	return id, nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

type fakeTopupRepo struct {
	mu     sync.Mutex
	topups map[primitive.ObjectID]*model.TopupRequest
}

func newFakeTopupRepo() *fakeTopupRepo {
	return &fakeTopupRepo{topups: make(map[primitive.ObjectID]*model.TopupRequest)}
}

func (r *fakeTopupRepo) Create(ctx context.Context, topup *model.TopupRequest) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := primitive.NewObjectID()
	if topup.CreatedAt.IsZero() {
		topup.CreatedAt = time.Now()
	}
	topup.UpdatedAt = topup.CreatedAt
	clone := *topup
	clone.ID = id
	r.topups[id] = &clone
	return id, nil
}

func (r *fakeTopupRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TopupRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	topup, ok := r.topups[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *topup
	return &clone, nil
}

func (r *fakeTopupRepo) FindAll(ctx context.Context, status model.TopupStatus) ([]model.TopupRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var topups []model.TopupRequest
	for _, topup := range r.topups {
		if status != "" && topup.Status != status {
			continue
		}
		topups = append(topups, *topup)
	}
	sort.Slice(topups, func(i, j int) bool {
		return topups[i].CreatedAt.After(topups[j].CreatedAt)
	})
	return topups, nil
}

func (r *fakeTopupRepo) Resolve(ctx context.Context, id primitive.ObjectID, status model.TopupStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topup, ok := r.topups[id]
	if !ok || topup.Status != model.TopupStatusPending {
		return repository.ErrNotFound
	}
	topup.Status = status
	topup.UpdatedAt = time.Now()
	return nil
}
