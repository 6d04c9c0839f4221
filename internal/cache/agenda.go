package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const yearTTL = 5 * time.Minute

// AgendaCache guarda a visão anual agregada, a mais cara de montar.
// Instância nil desliga o cache por completo.
type AgendaCache struct {
	rdb *redis.Client
}

func NewAgendaCache(addr, password string) *AgendaCache {
	if addr == "" {
		return nil
	}

	return &AgendaCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func yearKey(year int) string {
	return fmt.Sprintf("agenda:year:%d", year)
}

func (c *AgendaCache) GetYear(ctx context.Context, year int) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, yearKey(year)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *AgendaCache) SetYear(ctx context.Context, year int, payload []byte) {
	if c == nil {
		return
	}

	// erro de cache não interessa ao chamador
	c.rdb.Set(ctx, yearKey(year), payload, yearTTL)
}

func (c *AgendaCache) InvalidateYear(ctx context.Context, year int) {
	if c == nil {
		return
	}

	c.rdb.Del(ctx, yearKey(year))
}
