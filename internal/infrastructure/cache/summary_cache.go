// Package cache implementa el cache del resumen del dashboard sobre Redis,
// con una variante noop para entornos sin Redis configurado.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/tu-usuario/ventas-pro/internal/application/analytics"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

const summaryKey = "dashboard:summary"

var _ analytics.SummaryCache = (*RedisSummaryCache)(nil)
var _ analytics.SummaryCache = NoopSummaryCache{}

// RedisSummaryCache guarda el resumen serializado en JSON con TTL corto.
// Los errores de Redis no se propagan: el dashboard siempre puede
// recalcularse desde la base.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisSummaryCache construye el cache conectado a Redis.
func NewRedisSummaryCache(addr, password string, db int, ttl time.Duration, log *logger.Logger) *RedisSummaryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSummaryCache{client: client, ttl: ttl, log: log}
}

// Ping verifica la conexión.
func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra la conexión.
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

// Get devuelve el resumen cacheado si existe y no expiró.
func (c *RedisSummaryCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool) {
	val, err := c.client.Get(ctx, summaryKey).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("cache: fallo leyendo resumen, se recalcula")
		return nil, false
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, false
	}
	return &summary, true
}

// Set guarda el resumen con el TTL configurado.
func (c *RedisSummaryCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) {
	if summary == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, summaryKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: fallo guardando resumen")
	}
}

// Invalidate borra el resumen cacheado (tras crear o modificar una venta).
func (c *RedisSummaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: fallo invalidando resumen")
	}
}

// NoopSummaryCache no cachea nada. Se usa cuando Redis no está configurado
// o no responde al arranque.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool) { return nil, false }
func (NoopSummaryCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) {}
func (NoopSummaryCache) Invalidate(ctx context.Context)                            {}
