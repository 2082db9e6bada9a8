package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"LOJA_PIX_GO/logger"
	"LOJA_PIX_GO/models"
)

const settingsKey = "settings:current"

// SettingsSource é o armazenamento de origem das configurações.
type SettingsSource interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, in models.SettingsInput) (*models.Settings, error)
}

// SettingsCache é um cache read-through no Redis. Falhas do Redis nunca
// impedem a leitura: caem direto na origem.
type SettingsCache struct {
	next SettingsSource
	rdb  *redis.Client
	ttl  time.Duration
}

func NewSettingsCache(next SettingsSource, rdb *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *SettingsCache) Get(ctx context.Context) (*models.Settings, error) {
	data, err := c.rdb.Get(ctx, settingsKey).Bytes()
	switch {
	case err == nil:
		var s models.Settings
		decodeErr := msgpack.Unmarshal(data, &s)
		if decodeErr == nil {
			return &s, nil
		}
		logger.Warn("[Cache:Settings:Get] - Falha ao decodificar configurações em cache", zap.Error(decodeErr))
	case !errors.Is(err, redis.Nil):
		logger.Warn("[Cache:Settings:Get] - Redis indisponível, lendo do banco", zap.Error(err))
	}

	s, err := c.next.Get(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, s)
	return s, nil
}

func (c *SettingsCache) Save(ctx context.Context, in models.SettingsInput) (*models.Settings, error) {
	s, err := c.next.Save(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := c.rdb.Del(ctx, settingsKey).Err(); err != nil {
		logger.Warn("[Cache:Settings:Save] - Falha ao invalidar cache", zap.Error(err))
	}
	return s, nil
}

func (c *SettingsCache) store(ctx context.Context, s *models.Settings) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		logger.Warn("[Cache:Settings:store] - Falha ao serializar configurações", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, settingsKey, b, c.ttl).Err(); err != nil {
		logger.Warn("[Cache:Settings:store] - Falha ao gravar cache", zap.Error(err))
	}
}
