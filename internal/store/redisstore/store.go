// Package redisstore backs the web application's cookie sessions. The relay
// only resolves session id -> user id; it never writes.
package redisstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var ErrNoSession = errors.New("web session not found")

type Store struct {
	rdb *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *Store) UserIDForSession(ctx context.Context, sessionID string) (string, error) {
	v, err := s.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", err
	}
	return v, nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
