package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"healthcard_backend/internals/configs"
)

// Redis nil berarti tidak tersedia; caller wajib punya fallback.
var Redis *redis.Client

func ConnectRedis() *redis.Client {
	if configs.RedisURL == "" {
		log.Println("ℹ️ REDIS_URL kosong, Redis dimatikan")
		return nil
	}
	opt, err := redis.ParseURL(configs.RedisURL)
	if err != nil {
		log.Fatalf("❌ REDIS_URL tidak valid: %v", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa di-ping, lanjut tanpa Redis: %v", err)
		_ = client.Close()
		return nil
	}
	Redis = client
	log.Println("✅ Redis connected.")
	return client
}
