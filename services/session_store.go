package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/cansuyumceylan/FlowSync/models"
)

// SessionStore persists focus session snapshots between restarts. Load
// returns (nil, nil) when no snapshot exists for the user.
type SessionStore interface {
	Load(ctx context.Context, userID string) (*models.FocusSession, error)
	Save(ctx context.Context, userID string, session *models.FocusSession) error
}

// RedisSessionStore keeps one JSON snapshot per user under "focus:<uid>".
// The session mutates on every tick, which makes Redis the right home for
// it rather than MySQL.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("focus:%s", userID)
}

func (r *RedisSessionStore) Load(ctx context.Context, userID string) (*models.FocusSession, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.FocusSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, userID string, session *models.FocusSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(userID), data, 0).Err()
}
