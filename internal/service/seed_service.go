package service

import (
	"context"
	"fmt"
	"log"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"
)

type seedRestaurant struct {
	restaurant domain.RestaurantInput
	menu       []domain.MenuItemInput
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// Sample catalogue inserted into an empty store. MenuItemInput.RestaurantID
// is filled in once the restaurant has an id.
func sampleCatalogue() []seedRestaurant {
	return []seedRestaurant{
		{
			restaurant: domain.RestaurantInput{
				Name:        "Pasta Palace",
				Description: "Authentic Italian pastas and pizzas",
				Cuisine:     "Italian",
				ImageURL:    "https://images.unsplash.com/photo-1603133872878-684f208fb84f",
				Rating:      floatPtr(4.7),
				DeliveryFee: floatPtr(2.99),
				EtaMinutes:  intPtr(30),
			},
			menu: []domain.MenuItemInput{
				{Name: "Margherita Pizza", Description: "Classic with fresh basil", Price: floatPtr(12.99), ImageURL: "https://images.unsplash.com/photo-1548365328-9f547fb09530"},
				{Name: "Fettuccine Alfredo", Description: "Creamy parmesan sauce", Price: floatPtr(14.5), ImageURL: "https://images.unsplash.com/photo-1529042410759-befb1204b468"},
			},
		},
		{
			restaurant: domain.RestaurantInput{
				Name:        "Spice Route",
				Description: "North Indian curries and tandoori",
				Cuisine:     "Indian",
				ImageURL:    "https://images.unsplash.com/photo-1604908177673-3f4f5463f2ef",
				Rating:      floatPtr(4.6),
				DeliveryFee: floatPtr(3.49),
				EtaMinutes:  intPtr(35),
			},
			menu: []domain.MenuItemInput{
				{Name: "Butter Chicken", Description: "Rich tomato gravy", Price: floatPtr(13.99), ImageURL: "https://images.unsplash.com/photo-1588167056547-c183313da70a"},
				{Name: "Paneer Tikka", Description: "Grilled cottage cheese", Price: floatPtr(11.25), IsVeg: true, ImageURL: "https://images.unsplash.com/photo-1596797038530-2c107229f829"},
			},
		},
	}
}

type SeedService struct {
	store DocumentStore
	lock  SeedLocker
}

// NewSeedService accepts a nil lock, in which case seeding runs unlocked.
func NewSeedService(store DocumentStore, lock SeedLocker) *SeedService {
	return &SeedService{store: store, lock: lock}
}

// Seed inserts the sample catalogue only when the restaurant collection is empty.
func (s *SeedService) Seed(ctx context.Context) error {
	if s.store == nil {
		return ErrStoreNotConfigured
	}

	if s.lock != nil {
		release, ok, err := s.lock.Acquire(ctx)
		switch {
		case err != nil:
			log.Printf("Warning: seed lock unavailable, seeding unlocked: %v", err)
		case !ok:
			log.Println("Seed already running elsewhere, skipping")
			return nil
		default:
			defer release()
		}
	}

	count, err := s.store.Count(ctx, storage.RestaurantCollection)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, entry := range sampleCatalogue() {
		if err := s.seedRestaurant(ctx, entry); err != nil {
			return err
		}
	}
	log.Println("Seeded sample restaurants and menu items")
	return nil
}

func (s *SeedService) seedRestaurant(ctx context.Context, entry seedRestaurant) error {
	rest, err := domain.NewRestaurant(entry.restaurant)
	if err != nil {
		return fmt.Errorf("invalid seed restaurant %q: %w", entry.restaurant.Name, err)
	}
	restaurantID, err := s.store.Create(ctx, storage.RestaurantCollection, rest)
	if err != nil {
		return err
	}

	for _, input := range entry.menu {
		input.RestaurantID = restaurantID
		item, err := domain.NewMenuItem(input)
		if err != nil {
			return fmt.Errorf("invalid seed menu item %q: %w", input.Name, err)
		}
		if _, err := s.store.Create(ctx, storage.MenuItemCollection, item); err != nil {
			return err
		}
	}
	return nil
}
