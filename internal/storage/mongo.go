package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-delivery/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RestaurantCollection = "restaurant"
	MenuItemCollection   = "menuitem"
	OrderCollection      = "order"
)

var ErrNotFound = errors.New("document not found")

// StorageError reports a failed driver call.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

type ListOptions struct {
	// Limit <= 0 means no limit.
	Limit       int64
	NewestFirst bool
}

type MongoStore struct {
	DB *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db}
}

func (s *MongoStore) Create(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.DB.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", &StorageError{Op: "insert", Collection: collection, Err: err}
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *MongoStore) List(ctx context.Context, collection string, opts ListOptions) ([]bson.M, error) {
	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.NewestFirst {
		findOpts.SetSort(bson.D{{Key: "_id", Value: -1}})
	}

	cursor, err := s.DB.Collection(collection).Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, &StorageError{Op: "find", Collection: collection, Err: err}
	}

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StorageError{Op: "decode", Collection: collection, Err: err}
	}
	return docs, nil
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.DB.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, &StorageError{Op: "count", Collection: collection, Err: err}
	}
	return n, nil
}

func (s *MongoStore) GetRestaurant(ctx context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := s.findOne(ctx, RestaurantCollection, bson.M{"_id": id}, &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListMenu matches restaurant_id against the raw string form it was stored in.
func (s *MongoStore) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	if err := s.findAll(ctx, MenuItemCollection, bson.M{"restaurant_id": restaurantID}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) FindMenuItems(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	if len(ids) == 0 {
		return items, nil
	}
	if err := s.findAll(ctx, MenuItemCollection, bson.M{"_id": bson.M{"$in": ids}}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoStore) GetOrder(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	var order domain.Order
	if err := s.findOne(ctx, OrderCollection, bson.M{"_id": id}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus moves an order from one status to another only if it is
// still in the expected one; ErrNotFound means the order is gone or moved on.
func (s *MongoStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from, to domain.OrderStatus) (*domain.Order, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := s.DB.Collection(OrderCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "update", Collection: OrderCollection, Err: err}
	}
	return &order, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.DB.Client().Ping(ctx, nil); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

func (s *MongoStore) DatabaseName() string {
	return s.DB.Name()
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &StorageError{Op: "list collections", Err: err}
	}
	return names, nil
}

func (s *MongoStore) findOne(ctx context.Context, collection string, filter bson.M, out any) error {
	err := s.DB.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return &StorageError{Op: "find", Collection: collection, Err: err}
	}
	return nil
}

func (s *MongoStore) findAll(ctx context.Context, collection string, filter bson.M, out any) error {
	cursor, err := s.DB.Collection(collection).Find(ctx, filter)
	if err != nil {
		return &StorageError{Op: "find", Collection: collection, Err: err}
	}
	if err := cursor.All(ctx, out); err != nil {
		return &StorageError{Op: "decode", Collection: collection, Err: err}
	}
	return nil
}
