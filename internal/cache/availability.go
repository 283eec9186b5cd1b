package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityTTL = 10 * time.Minute

// AvailabilityCache memoiza el booleano "¿hay algún slot libre?" por
// (negocio, profesional, servicio, fecha). La invalidación es por versión:
// cada mutación de agenda del profesional incrementa su contador y las
// claves viejas expiran solas por TTL. Un puntero nil desactiva el cache.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb}
}

func (c *AvailabilityCache) version(ctx context.Context, negocioID, professionalID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("availver:%d:%d", negocioID, professionalID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *AvailabilityCache) key(ctx context.Context, negocioID, professionalID, serviceID uint, date time.Time) string {
	return fmt.Sprintf(
		"avail:%d:%d:%d:%s:v%d",
		negocioID, professionalID, serviceID,
		date.Format("2006-01-02"),
		c.version(ctx, negocioID, professionalID),
	)
}

// Get devuelve (valor, encontrado).
func (c *AvailabilityCache) Get(ctx context.Context, negocioID, professionalID, serviceID uint, date time.Time) (bool, bool) {
	if c == nil || c.rdb == nil {
		return false, false
	}

	val, err := c.rdb.Get(ctx, c.key(ctx, negocioID, professionalID, serviceID, date)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (c *AvailabilityCache) Set(ctx context.Context, negocioID, professionalID, serviceID uint, date time.Time, has bool) {
	if c == nil || c.rdb == nil {
		return
	}

	val := "0"
	if has {
		val = "1"
	}
	c.rdb.Set(ctx, c.key(ctx, negocioID, professionalID, serviceID, date), val, availabilityTTL)
}

// Invalidate descarta todo lo cacheado para un profesional. Se llama al
// crear/cancelar turnos y al editar horarios o bloqueos.
func (c *AvailabilityCache) Invalidate(ctx context.Context, negocioID, professionalID uint) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Incr(ctx, fmt.Sprintf("availver:%d:%d", negocioID, professionalID))
}
