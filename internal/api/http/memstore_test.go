package httpapi_test

import (
	"context"
	"sync"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore keeps documents in insertion order per collection.
type memStore struct {
	mu   sync.Mutex
	docs map[string][]bson.M
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]bson.M{}}
}

func (s *memStore) Create(_ context.Context, collection string, record any) (string, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return "", err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], doc)
	return id.Hex(), nil
}

func (s *memStore) List(_ context.Context, collection string, opts storage.ListOptions) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.docs[collection]
	out := make([]bson.M, 0, len(docs))
	for i := range docs {
		if opts.NewestFirst {
			out = append(out, docs[len(docs)-1-i])
		} else {
			out = append(out, docs[i])
		}
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *memStore) Count(_ context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.docs[collection])), nil
}

func (s *memStore) find(collection string, match func(bson.M) bool) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []bson.M
	for _, doc := range s.docs[collection] {
		if match(doc) {
			out = append(out, doc)
		}
	}
	return out
}

func decodeInto(doc bson.M, v any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

func (s *memStore) GetRestaurant(_ context.Context, id primitive.ObjectID) (*domain.Restaurant, error) {
	found := s.find(storage.RestaurantCollection, func(d bson.M) bool { return d["_id"] == id })
	if len(found) == 0 {
		return nil, storage.ErrNotFound
	}
	var rest domain.Restaurant
	return &rest, decodeInto(found[0], &rest)
}

func (s *memStore) ListMenu(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	found := s.find(storage.MenuItemCollection, func(d bson.M) bool { return d["restaurant_id"] == restaurantID })
	return s.menuItems(found)
}

func (s *memStore) FindMenuItems(_ context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error) {
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	found := s.find(storage.MenuItemCollection, func(d bson.M) bool {
		id, _ := d["_id"].(primitive.ObjectID)
		return wanted[id]
	})
	return s.menuItems(found)
}

func (s *memStore) menuItems(docs []bson.M) ([]domain.MenuItem, error) {
	items := make([]domain.MenuItem, 0, len(docs))
	for _, doc := range docs {
		var item domain.MenuItem
		if err := decodeInto(doc, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *memStore) GetOrder(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	found := s.find(storage.OrderCollection, func(d bson.M) bool { return d["_id"] == id })
	if len(found) == 0 {
		return nil, storage.ErrNotFound
	}
	var order domain.Order
	return &order, decodeInto(found[0], &order)
}

func (s *memStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, from, to domain.OrderStatus) (*domain.Order, error) {
	s.mu.Lock()
	updated := false
	for _, doc := range s.docs[storage.OrderCollection] {
		if doc["_id"] == id && doc["status"] == string(from) {
			doc["status"] = string(to)
			updated = true
			break
		}
	}
	s.mu.Unlock()

	if !updated {
		return nil, storage.ErrNotFound
	}
	return s.GetOrder(ctx, id)
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) DatabaseName() string { return "memory" }

func (s *memStore) CollectionNames(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}
