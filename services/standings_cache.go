package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"hooprank-api/models"

	"github.com/go-redis/redis/v8"
)

// StandingsCacheTTL bounds how long a standings payload is served without
// recomputation.
const StandingsCacheTTL = 5 * time.Minute

// StandingsCache caches assembled league payloads keyed by season and
// completed-through week. Both implementations are best-effort: a miss or a
// failed write just means recomputation.
type StandingsCache interface {
	Get(key string) (*models.LeaguePayload, bool)
	Set(key string, payload *models.LeaguePayload)
	InvalidateSeason(season int)
}

// StandingsCacheKey builds the cache key for one season snapshot.
func StandingsCacheKey(leagueID, season, throughWeek int) string {
	return fmt.Sprintf("standings:%d:%d:%d", leagueID, season, throughWeek)
}

func seasonKeyPrefix(leagueID, season int) string {
	return fmt.Sprintf("standings:%d:%d:", leagueID, season)
}

// MemoryStandingsCache is the default in-process cache.
type MemoryStandingsCache struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	leagueID int
}

type memoryEntry struct {
	payload   *models.LeaguePayload
	expiresAt time.Time
}

func NewMemoryStandingsCache(leagueID int) *MemoryStandingsCache {
	return &MemoryStandingsCache{
		entries:  make(map[string]memoryEntry),
		leagueID: leagueID,
	}
}

func (c *MemoryStandingsCache) Get(key string) (*models.LeaguePayload, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

func (c *MemoryStandingsCache) Set(key string, payload *models.LeaguePayload) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(StandingsCacheTTL),
	}
	c.mu.Unlock()
}

func (c *MemoryStandingsCache) InvalidateSeason(season int) {
	prefix := seasonKeyPrefix(c.leagueID, season)
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// RedisStandingsCache backs the cache with Redis so multiple instances share
// it. Used when REDIS_ADDR is configured.
type RedisStandingsCache struct {
	client   *redis.Client
	ctx      context.Context
	leagueID int
}

// NewRedisStandingsCache connects to Redis and verifies the connection.
func NewRedisStandingsCache(addr string, leagueID int) (*RedisStandingsCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log.Printf("Standings cache using Redis at %s", addr)
	return &RedisStandingsCache{
		client:   client,
		ctx:      context.Background(),
		leagueID: leagueID,
	}, nil
}

func (c *RedisStandingsCache) Get(key string) (*models.LeaguePayload, bool) {
	data, err := c.client.Get(c.ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Standings cache read failed for %s: %v", key, err)
		}
		return nil, false
	}
	var payload models.LeaguePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Standings cache decode failed for %s: %v", key, err)
		return nil, false
	}
	return &payload, true
}

func (c *RedisStandingsCache) Set(key string, payload *models.LeaguePayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Standings cache encode failed for %s: %v", key, err)
		return
	}
	if err := c.client.Set(c.ctx, key, data, StandingsCacheTTL).Err(); err != nil {
		log.Printf("Standings cache write failed for %s: %v", key, err)
	}
}

func (c *RedisStandingsCache) InvalidateSeason(season int) {
	pattern := seasonKeyPrefix(c.leagueID, season) + "*"
	keys, err := c.client.Keys(c.ctx, pattern).Result()
	if err != nil {
		log.Printf("Standings cache invalidation scan failed for %s: %v", pattern, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(c.ctx, keys...).Err(); err != nil {
		log.Printf("Standings cache invalidation failed for %s: %v", pattern, err)
	}
}
