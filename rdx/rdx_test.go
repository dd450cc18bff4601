package rdx

import "testing"

func TestRedisAddr(t *testing.T) {
	t.Setenv("REDIS_URL", "redis.internal:6380")
	if got := redisAddr(); got != "redis.internal:6380" {
		t.Errorf("redisAddr() = %q, want redis.internal:6380", got)
	}

	t.Setenv("REDIS_URL", "")
	if got := redisAddr(); got != "localhost:6379" {
		t.Errorf("redisAddr() = %q, want the localhost fallback", got)
	}
}
