package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 30 * 24 * time.Hour

// RedisRepository persiste la session dans redis, clé par sid. À préférer
// en production : les tokens ne transitent plus dans le cookie, seul le
// sid y reste.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(host, password string) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("impossible de se connecter à Redis: %w", err)
	}
	return &RedisRepository{client: client}, nil
}

// Client expose la connexion pour les autres usages redis (rate limiting).
func (rr *RedisRepository) Client() *redis.Client { return rr.client }

func key(sid string) string { return "session:" + sid }

func (rr *RedisRepository) Get(ctx context.Context, sid string) (Session, error) {
	values, err := rr.client.HGetAll(ctx, key(sid)).Result()
	if err != nil {
		return Session{}, err
	}
	if len(values) == 0 {
		return Session{}, ErrNoSession
	}
	return Session{
		Access:  values[keyAccess],
		Refresh: values[keyRefresh],
		Lang:    values[keyLang],
	}, nil
}

func (rr *RedisRepository) Put(ctx context.Context, sid string, s Session) error {
	k := key(sid)
	if err := rr.client.HSet(ctx, k, map[string]interface{}{
		keyAccess:  s.Access,
		keyRefresh: s.Refresh,
		keyLang:    s.Lang,
	}).Err(); err != nil {
		return err
	}
	return rr.client.Expire(ctx, k, sessionTTL).Err()
}

func (rr *RedisRepository) Clear(ctx context.Context, sid string) error {
	return rr.client.Del(ctx, key(sid)).Err()
}
