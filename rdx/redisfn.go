package rdx

import (
	"log"
	"os"
	"time"

	"congreso/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// --- Small wrappers so handlers stay terse ---

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(globals.Ctx, hash, field).Result()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

// IsNil reports whether err is a cache miss rather than a real failure.
func IsNil(err error) bool {
	return err == redis.Nil
}

// LogIfErr keeps cache failures non-fatal: Redis being down degrades to
// recomputing, never to a 500.
func LogIfErr(op string, err error) {
	if err != nil && !IsNil(err) {
		log.Printf("redis %s failed: %v", op, err)
	}
}
