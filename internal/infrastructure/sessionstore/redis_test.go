package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yu-shop/storefront-api/internal/core/domain"
)

type stubRedis struct {
	getFn func(key string) *redis.StringCmd
	setFn func(key string, value any, expiration time.Duration) *redis.StatusCmd
	delFn func(keys ...string) *redis.IntCmd
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	return s.getFn(key)
}

func (s *stubRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	return s.setFn(key, value, expiration)
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return s.delFn(keys...)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store := &RedisStore{client: &stubRedis{
		getFn: func(key string) *redis.StringCmd {
			if key != "auth_state" {
				t.Fatalf("unexpected key: %s", key)
			}
			return redis.NewStringResult("", redis.Nil)
		},
	}}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state, got %+v", state)
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	var stored string
	stub := &stubRedis{
		setFn: func(key string, value any, expiration time.Duration) *redis.StatusCmd {
			if key != "auth_state" {
				t.Fatalf("unexpected key: %s", key)
			}
			if expiration != 0 {
				t.Fatalf("state must not expire, got ttl %v", expiration)
			}
			stored = string(value.([]byte))
			return redis.NewStatusResult("OK", nil)
		},
	}
	stub.getFn = func(key string) *redis.StringCmd {
		return redis.NewStringResult(stored, nil)
	}
	store := &RedisStore{client: stub}

	saved := domain.LoggedInAs(&domain.Member{MemberID: 12345, Name: "測試用戶"}, domain.UserTypeMember)
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil || !loaded.IsLoggedIn || loaded.User.MemberID != 12345 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if *loaded.UserType != domain.UserTypeMember {
		t.Fatalf("unexpected user type: %v", loaded.UserType)
	}
}

func TestRedisStore_LoadCorrupt(t *testing.T) {
	store := &RedisStore{client: &stubRedis{
		getFn: func(key string) *redis.StringCmd {
			return redis.NewStringResult("{broken", nil)
		},
	}}

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error for corrupt state")
	}
}

func TestRedisStore_LoadConnectionError(t *testing.T) {
	store := &RedisStore{client: &stubRedis{
		getFn: func(key string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("connection refused"))
		},
	}}

	if _, err := store.Load(); err == nil {
		t.Fatalf("expected connection error to propagate")
	}
}

func TestRedisStore_Clear(t *testing.T) {
	var deleted []string
	store := &RedisStore{client: &stubRedis{
		delFn: func(keys ...string) *redis.IntCmd {
			deleted = append(deleted, keys...)
			return redis.NewIntResult(1, nil)
		},
	}}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != "auth_state" {
		t.Fatalf("unexpected deletes: %v", deleted)
	}
}

func TestRedisStore_SaveSerializesState(t *testing.T) {
	store := &RedisStore{client: &stubRedis{
		setFn: func(key string, value any, expiration time.Duration) *redis.StatusCmd {
			var state domain.AuthState
			if err := json.Unmarshal(value.([]byte), &state); err != nil {
				t.Fatalf("stored value is not auth state json: %v", err)
			}
			if state.IsLoggedIn {
				t.Fatalf("expected logged-out state, got %+v", state)
			}
			return redis.NewStatusResult("OK", nil)
		},
	}}

	if err := store.Save(domain.LoggedOut()); err != nil {
		t.Fatalf("save: %v", err)
	}
}
