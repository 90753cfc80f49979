package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultRating      = 4.5
	DefaultDeliveryFee = 2.99
	DefaultEtaMinutes  = 30
)

type Restaurant struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
	Cuisine     string             `json:"cuisine" bson:"cuisine"`
	ImageURL    string             `json:"image_url" bson:"image_url"`
	Rating      float64            `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	DeliveryFee float64            `json:"delivery_fee" bson:"delivery_fee" validate:"gte=0"`
	EtaMinutes  int                `json:"eta_minutes" bson:"eta_minutes" validate:"gte=1"`
}

// RestaurantInput is the unvalidated shape of a restaurant; nil optional
// fields take their defaults.
type RestaurantInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Cuisine     string   `json:"cuisine"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	DeliveryFee *float64 `json:"delivery_fee" validate:"omitempty,gte=0"`
	EtaMinutes  *int     `json:"eta_minutes" validate:"omitempty,gte=1"`
}

func NewRestaurant(in RestaurantInput) (Restaurant, error) {
	if err := Validate(in); err != nil {
		return Restaurant{}, err
	}

	rest := Restaurant{
		Name:        in.Name,
		Description: in.Description,
		Cuisine:     in.Cuisine,
		ImageURL:    in.ImageURL,
		Rating:      DefaultRating,
		DeliveryFee: DefaultDeliveryFee,
		EtaMinutes:  DefaultEtaMinutes,
	}
	if in.Rating != nil {
		rest.Rating = *in.Rating
	}
	if in.DeliveryFee != nil {
		rest.DeliveryFee = *in.DeliveryFee
	}
	if in.EtaMinutes != nil {
		rest.EtaMinutes = *in.EtaMinutes
	}
	return rest, nil
}

type MenuItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RestaurantID string             `json:"restaurant_id" bson:"restaurant_id" validate:"required"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Description  string             `json:"description" bson:"description"`
	Price        float64            `json:"price" bson:"price" validate:"gte=0"`
	ImageURL     string             `json:"image_url" bson:"image_url"`
	IsVeg        bool               `json:"is_veg" bson:"is_veg"`
	SpicyLevel   int                `json:"spicy_level" bson:"spicy_level" validate:"gte=0,lte=3"`
}

type MenuItemInput struct {
	RestaurantID string   `json:"restaurant_id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	ImageURL     string   `json:"image_url"`
	IsVeg        bool     `json:"is_veg"`
	SpicyLevel   *int     `json:"spicy_level" validate:"omitempty,gte=0,lte=3"`
}

func NewMenuItem(in MenuItemInput) (MenuItem, error) {
	if err := Validate(in); err != nil {
		return MenuItem{}, err
	}

	item := MenuItem{
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        *in.Price,
		ImageURL:     in.ImageURL,
		IsVeg:        in.IsVeg,
	}
	if in.SpicyLevel != nil {
		item.SpicyLevel = *in.SpicyLevel
	}
	return item, nil
}

// Customer is not served by any route yet.
type Customer struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name" validate:"required"`
	Email   string             `json:"email" bson:"email" validate:"required,email"`
	Address string             `json:"address" bson:"address" validate:"required"`
	Phone   *string            `json:"phone" bson:"phone"`
}

func NewCustomer(in Customer) (Customer, error) {
	if err := Validate(in); err != nil {
		return Customer{}, err
	}
	return in, nil
}

type OrderItem struct {
	MenuItemID string `json:"menu_item_id" bson:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" bson:"quantity" validate:"required,gte=1"`
}

type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RestaurantID    string             `json:"restaurant_id" bson:"restaurant_id" validate:"required"`
	CustomerID      *string            `json:"customer_id" bson:"customer_id"`
	CustomerName    *string            `json:"customer_name" bson:"customer_name"`
	CustomerAddress *string            `json:"customer_address" bson:"customer_address"`
	CustomerEmail   *string            `json:"customer_email" bson:"customer_email" validate:"omitempty,email"`
	Items           []OrderItem        `json:"items" bson:"items" validate:"required,min=1,dive"`
	Subtotal        float64            `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	DeliveryFee     float64            `json:"delivery_fee" bson:"delivery_fee" validate:"gte=0"`
	Total           float64            `json:"total" bson:"total" validate:"gte=0"`
	Status          OrderStatus        `json:"status" bson:"status" validate:"order_status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	RestaurantID    string      `json:"restaurant_id" validate:"required"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
	CustomerName    *string     `json:"customer_name" validate:"required"`
	CustomerAddress *string     `json:"customer_address" validate:"required"`
	CustomerEmail   *string     `json:"customer_email" validate:"omitempty,email"`
}

type OrderReceipt struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
	Total  float64     `json:"total"`
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" validate:"order_status"`
}

// StoreStatus is the connectivity report served by the diagnostics route.
type StoreStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
