package infra

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const geocacheTTL = 24 * time.Hour

// GeoCache caches successful morada → coordinate lookups in Redis so repeated
// registrations for the same address skip the throttled provider round-trip.
// Cache failures are logged and ignored — the pipeline works without Redis.
type GeoCache struct {
	rdb *redis.Client
}

// NewGeoCache connects to Redis and validates the connection at startup.
func NewGeoCache(redisURL string) (*GeoCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &GeoCache{rdb: rdb}, nil
}

func geocacheKey(consulta string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(consulta))
}

// Get returns cached coordinates for a query, if present.
func (g *GeoCache) Get(ctx context.Context, consulta string) (float64, float64, bool) {
	val, err := g.rdb.Get(ctx, geocacheKey(consulta)).Result()
	if err != nil {
		return 0, 0, false
	}
	partes := strings.SplitN(val, ",", 2)
	if len(partes) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(partes[0], 64)
	lng, err2 := strconv.ParseFloat(partes[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// Set stores a resolved coordinate pair with a 24h TTL.
func (g *GeoCache) Set(ctx context.Context, consulta string, lat, lng float64) {
	val := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
	if err := g.rdb.Set(ctx, geocacheKey(consulta), val, geocacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("geocache: falha ao gravar")
	}
}
