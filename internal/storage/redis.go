package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const seedLockKey = "food-delivery:seed:lock"

// Deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisSeedLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSeedLock(client *redis.Client, ttl time.Duration) *RedisSeedLock {
	return &RedisSeedLock{Client: client, TTL: ttl}
}

// Acquire tries once to take the lock. When ok is false another process holds it.
func (l *RedisSeedLock) Acquire(ctx context.Context) (release func(), ok bool, err error) {
	token := uuid.NewString()
	ok, err = l.Client.SetNX(ctx, seedLockKey, token, l.TTL).Result()
	if err != nil || !ok {
		return func() {}, ok, err
	}

	release = func() {
		_ = releaseScript.Run(context.Background(), l.Client, []string{seedLockKey}, token).Err()
	}
	return release, true, nil
}
