package rdx

import (
	"log"
	"os"
	"time"

	"campushub/globals"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// redisAddr resolves the Redis address. The .env file has to be loaded
// here too: this init runs before main's godotenv.Load.
func redisAddr() string {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

func init() {
	Conn = redis.NewClient(&redis.Options{Addr: redisAddr()})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis ping failed: %v", err)
	}
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

// RdxGetDel reads and removes a key in one shot; used for single-use
// reauth tokens.
func RdxGetDel(key string) (string, error) {
	return Conn.GetDel(globals.Ctx, key).Result()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}
