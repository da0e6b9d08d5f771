package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/config"
)

// HealthStatus reports reachability of the service's backing stores.
type HealthStatus struct {
	Database  bool      `json:"database"`
	Cache     bool      `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor periodically pings the configured database and the
// availability cache, keeping an in-memory snapshot for the health endpoint.
func StartHealthMonitor(cacheClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			cacheHealthy := cacheClient.Ping(ctx).Err() == nil
			dbHealthy := mongoClient.Database(config.AppConfig.DatabaseName).
				RunCommand(ctx, bson.M{"ping": 1}).Err() == nil

			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Database:  dbHealthy,
				Cache:     cacheHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
