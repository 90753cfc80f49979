package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultOrderListLimit = 50

var (
	ErrInvalidItems      = errors.New("invalid items")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

type OrderService struct {
	restaurants RestaurantRepository
	orders      OrderRepository
	publisher   OrderPublisher
	qrEncoder   QRGenerator
	baseURL     string
}

// NewOrderService accepts nil repositories (store unconfigured) and a nil
// publisher or QR generator (feature disabled).
func NewOrderService(restaurants RestaurantRepository, orders OrderRepository, publisher OrderPublisher, qr QRGenerator, baseURL string) *OrderService {
	return &OrderService{
		restaurants: restaurants,
		orders:      orders,
		publisher:   publisher,
		qrEncoder:   qr,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (s *OrderService) configured() bool {
	return s.restaurants != nil && s.orders != nil
}

func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.OrderReceipt, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	restaurantID, err := storage.ParseID(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	itemIDs := make([]primitive.ObjectID, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := storage.ParseID(item.MenuItemID)
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, id)
	}

	restaurant, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}

	rawSubtotal, err := s.subtotal(ctx, req.Items, itemIDs)
	if err != nil {
		return nil, err
	}
	quote := NewQuote(rawSubtotal, restaurant.DeliveryFee)

	order := domain.Order{
		RestaurantID:    restaurantID.Hex(),
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerEmail:   req.CustomerEmail,
		Items:           req.Items,
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		Total:           quote.Total,
		Status:          domain.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := domain.Validate(order); err != nil {
		return nil, err
	}

	orderID, err := s.orders.Create(ctx, storage.OrderCollection, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      orderID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		Total:        order.Total,
		Timestamp:    order.CreatedAt,
	})

	return &domain.OrderReceipt{ID: orderID, Status: order.Status, Total: order.Total}, nil
}

// subtotal prices every submitted line against the menu items fetched in one
// query. An empty result fails as a whole; otherwise the first unresolved
// line decides the error.
func (s *OrderService) subtotal(ctx context.Context, items []domain.OrderItem, ids []primitive.ObjectID) (float64, error) {
	menuItems, err := s.restaurants.FindMenuItems(ctx, ids)
	if err != nil {
		return 0, err
	}
	if len(menuItems) == 0 {
		return 0, ErrInvalidItems
	}

	byID := make(map[primitive.ObjectID]domain.MenuItem, len(menuItems))
	for _, menuItem := range menuItems {
		byID[menuItem.ID] = menuItem
	}

	var subtotal float64
	for i, item := range items {
		menuItem, ok := byID[ids[i]]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMenuItemNotFound, item.MenuItemID)
		}
		subtotal += menuItem.Price * float64(item.Quantity)
	}
	return subtotal, nil
}

func (s *OrderService) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	// Zero lists every order; a negative limit counts from its absolute value.
	if limit < 0 {
		limit = -limit
	}

	docs, err := s.orders.List(ctx, storage.OrderCollection, storage.ListOptions{Limit: limit, NewestFirst: true})
	if err != nil {
		return nil, err
	}
	return storage.SerializeAll(docs), nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	objectID, err := storage.ParseID(id)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrder(ctx, objectID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !s.configured() {
		return nil, ErrStoreNotConfigured
	}
	if err := domain.Validate(domain.UpdateStatusRequest{Status: status}); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.orders.UpdateOrderStatus(ctx, current.ID, current.Status, status)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: order is no longer %s", ErrInvalidTransition, current.Status)
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:           domain.EventOrderStatusChanged,
		OrderID:        updated.ID.Hex(),
		RestaurantID:   updated.RestaurantID,
		Status:         updated.Status,
		PreviousStatus: current.Status,
		Total:          updated.Total,
		Timestamp:      time.Now().UTC(),
	})

	return updated, nil
}

func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr generation disabled")
	}
	return s.qrEncoder.Generate(s.ReceiptURL(order.ID.Hex()))
}

func (s *OrderService) ReceiptURL(orderID string) string {
	return s.baseURL + "/orders/" + orderID
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
	}
}
