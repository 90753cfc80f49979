package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-delivery/config"
	httpapi "food-delivery/internal/api/http"
	"food-delivery/internal/service"
	"food-delivery/internal/storage"
)

const seedLockTTL = 30 * time.Second

func main() {
	cfg := config.Load()

	var (
		restaurants service.RestaurantRepository
		orders      service.OrderRepository
		documents   service.DocumentStore
		inspector   service.StoreInspector
		publisher   service.OrderPublisher
		seedLock    service.SeedLocker
	)

	if cfg.StoreConfigured() {
		client, db := config.MustInitMongo(cfg)
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Warning: mongo disconnect: %v", err)
			}
		}()
		store := storage.NewMongoStore(db)
		restaurants, orders, documents, inspector = store, store, store, store
		log.Printf("Connected to database %s", cfg.DatabaseName)
	} else {
		log.Println("Warning: DATABASE_URL not set, store-backed routes will fail")
	}

	if rdb := config.NewRedis(cfg); rdb != nil {
		defer rdb.Close()
		seedLock = storage.NewRedisSeedLock(rdb, seedLockTTL)
	}

	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("Publishing order events to %s/%s", cfg.KafkaBroker, cfg.OrderEventsTopic)
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(restaurants),
		service.NewOrderService(restaurants, orders, publisher, service.DefaultQRGenerator{}, cfg.PublicBaseURL),
		service.NewSeedService(documents, seedLock),
		service.NewDiagnosticsService(inspector, cfg.StoreConfigured()),
	)
	server := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(handler))

	go func() {
		log.Printf("Food Delivery API starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
