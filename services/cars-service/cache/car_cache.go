package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"go.uber.org/zap"
)

const (
	CarCachePrefix     = "car:detail:"
	CarListCachePrefix = "cars:v:"
	CacheVersionKey    = "cars:version"

	DefaultTTL = 5 * time.Minute
)

// CarCache caches car details and listing pages in Redis. List entries are
// keyed by a shared version counter; bumping the counter on any availability
// change orphans every cached page at once.
type CarCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCarCache(redisClient *redis.Client, logger *zap.Logger) *CarCache {
	return &CarCache{
		redis:  redisClient,
		ttl:    DefaultTTL,
		logger: logger,
	}
}

// GetCar returns the cached car, if any.
func (c *CarCache) GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, bool) {
	data, err := c.redis.Get(ctx, CarCachePrefix+carUID.String()).Bytes()
	if err != nil {
		return nil, false
	}

	var car models.Car
	if err := json.Unmarshal(data, &car); err != nil {
		c.logger.Warn("Failed to unmarshal cached car", zap.Error(err))
		return nil, false
	}
	return &car, true
}

// SetCarAsync caches a car without blocking the request.
func (c *CarCache) SetCarAsync(car *models.Car) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(car)
		if err != nil {
			c.logger.Warn("Failed to marshal car for cache", zap.Error(err), zap.String("car_uid", car.CarUID.String()))
			return
		}
		if err := c.redis.Set(bgCtx, CarCachePrefix+car.CarUID.String(), data, c.ttl).Err(); err != nil {
			c.logger.Warn("Failed to cache car", zap.Error(err), zap.String("car_uid", car.CarUID.String()))
		}
	}()
}

// GetList returns a cached listing page, if any.
func (c *CarCache) GetList(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, bool) {
	version, err := c.cacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, listKey(version, page, size, showAll)).Bytes()
	if err != nil {
		return nil, false
	}

	var response models.PaginationResponse
	if err := json.Unmarshal(data, &response); err != nil {
		c.logger.Warn("Failed to unmarshal cached car list", zap.Error(err))
		return nil, false
	}
	return &response, true
}

// SetListAsync caches a listing page without blocking the request.
func (c *CarCache) SetListAsync(page, size int, showAll bool, response *models.PaginationResponse) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := c.cacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		data, err := json.Marshal(response)
		if err != nil {
			c.logger.Warn("Failed to marshal car list for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(bgCtx, listKey(version, page, size, showAll), data, c.ttl).Err(); err != nil {
			c.logger.Warn("Failed to cache car list", zap.Error(err))
		}
	}()
}

// InvalidateCar bumps the list version and drops the car's detail entry.
func (c *CarCache) InvalidateCar(ctx context.Context, carUID uuid.UUID) {
	if err := c.redis.Incr(ctx, CacheVersionKey).Err(); err != nil {
		c.logger.Error("Failed to invalidate car list cache", zap.Error(err), zap.String("car_uid", carUID.String()))
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.redis.Del(bgCtx, CarCachePrefix+carUID.String()).Err(); err != nil {
			c.logger.Warn("Failed to delete car cache", zap.Error(err), zap.String("car_uid", carUID.String()))
		}
	}()
}

func (c *CarCache) cacheVersion(ctx context.Context) (int64, error) {
	ver, err := c.redis.Get(ctx, CacheVersionKey).Int64()
	if err == nil && ver > 0 {
		return ver, nil
	}
	if err == redis.Nil {
		if err := c.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err == nil {
			return 1, nil
		}
	}
	return 0, fmt.Errorf("failed to get cache version: %w", err)
}

func listKey(version int64, page, size int, showAll bool) string {
	return fmt.Sprintf("%s%d:p:%d:l:%d:all:%t", CarListCachePrefix, version, page, size, showAll)
}
