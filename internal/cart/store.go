package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"velora_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// TTL : le panier vit le temps d'une session de navigation, puis disparaît.
const cartTTL = 24 * time.Hour

// Store abstrait le stockage du panier de session pour pouvoir le
// remplacer par une implémentation en mémoire dans les tests.
type Store interface {
	Get(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	Delete(ctx context.Context, sessionID string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil // panier vide
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
