package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Config struct {
	DatabaseURL      string
	DatabaseName     string
	Port             string
	RedisAddr        string
	KafkaBroker      string
	OrderEventsTopic string
	PublicBaseURL    string
}

func Load() Config {
	// .env is optional.
	_ = godotenv.Load()

	return Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DatabaseName:     getEnv("DATABASE_NAME", "food_delivery"),
		Port:             getEnv("PORT", "8000"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "orders"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
	}
}

func (c Config) StoreConfigured() bool {
	return c.DatabaseURL != ""
}

func MustInitMongo(cfg Config) (*mongo.Client, *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return client, client.Database(cfg.DatabaseName)
}

// NewRedis returns nil when no address is configured.
func NewRedis(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: redis at %s unreachable, seeding runs unlocked: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg Config) *kafka.Writer {
	if cfg.KafkaBroker == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBroker),
		Topic:                  cfg.OrderEventsTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           100 * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
