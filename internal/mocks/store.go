package mocks

import (
	"context"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a mock covering every repository interface the services use.
type Store struct {
	mock.Mock
}

func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Store) Create(ctx context.Context, collection string, record any) (string, error) {
	ret := _m.Called(ctx, collection, record)
	if rf, ok := ret.Get(0).(func(context.Context, string, any) (string, error)); ok {
		return rf(ctx, collection, record)
	}
	return ret.String(0), ret.Error(1)
}

func (_m *Store) List(ctx context.Context, collection string, opts storage.ListOptions) ([]bson.M, error) {
	ret := _m.Called(ctx, collection, opts)
	var r0 []bson.M
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]bson.M)
	}
	return r0, ret.Error(1)
}

func (_m *Store) Count(ctx context.Context, collection string) (int64, error) {
	ret := _m.Called(ctx, collection)
	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetRestaurant(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *Store) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Store) FindMenuItems(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, ids)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetOrder(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Store) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from, to domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, id, from, to)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Store) Ping(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}

func (_m *Store) DatabaseName() string {
	return _m.Called().String(0)
}

func (_m *Store) CollectionNames(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}
