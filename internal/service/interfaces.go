package service

import (
	"context"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentStore interface {
	Create(ctx context.Context, collection string, record any) (string, error)
	List(ctx context.Context, collection string, opts storage.ListOptions) ([]bson.M, error)
	Count(ctx context.Context, collection string) (int64, error)
}

type RestaurantRepository interface {
	DocumentStore
	GetRestaurant(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	FindMenuItems(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error)
}

type OrderRepository interface {
	DocumentStore
	GetOrder(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from, to domain.OrderStatus) (*domain.Order, error)
}

type StoreInspector interface {
	Ping(ctx context.Context) error
	DatabaseName() string
	CollectionNames(ctx context.Context) ([]string, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SeedLocker interface {
	Acquire(ctx context.Context) (release func(), ok bool, err error)
}

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.OrderReceipt, error)
	List(ctx context.Context, limit int64) ([]bson.M, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type SeedServiceInterface interface {
	Seed(ctx context.Context) error
}

type DiagnosticsInterface interface {
	Status(ctx context.Context) domain.StoreStatus
}

var (
	_ RestaurantRepository = (*storage.MongoStore)(nil)
	_ OrderRepository      = (*storage.MongoStore)(nil)
	_ StoreInspector       = (*storage.MongoStore)(nil)
	_ OrderPublisher       = (*storage.KafkaPublisher)(nil)
	_ SeedLocker           = (*storage.RedisSeedLock)(nil)

	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ SeedServiceInterface       = (*SeedService)(nil)
	_ DiagnosticsInterface       = (*DiagnosticsService)(nil)
)
