package service

import (
	"context"
	"errors"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrStoreNotConfigured = errors.New("database not configured")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type RestaurantService struct {
	repo RestaurantRepository
}

// NewRestaurantService accepts a nil repo; every call then fails with ErrStoreNotConfigured.
func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) List(ctx context.Context) ([]bson.M, error) {
	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	docs, err := s.repo.List(ctx, storage.RestaurantCollection, storage.ListOptions{})
	if err != nil {
		return nil, err
	}
	return storage.SerializeAll(docs), nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	objectID, err := storage.ParseID(id)
	if err != nil {
		return nil, err
	}

	rest, err := s.repo.GetRestaurant(ctx, objectID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

// Menu never fails on an unknown restaurant: it is simply an empty menu.
func (s *RestaurantService) Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if s.repo == nil {
		return nil, ErrStoreNotConfigured
	}
	items, err := s.repo.ListMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}
