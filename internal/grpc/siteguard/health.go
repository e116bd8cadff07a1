// Package siteguard hosts the gRPC surface of the engine. Only the standard
// health check service is exposed; load balancers and orchestration probes
// consume it.
package siteguard

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"siteguard-engine/internal/infrastructure/cache"
	"siteguard-engine/internal/infrastructure/database"
)

const serviceName = "siteguard.v1.RiskEngine"

// RegisterHealthServer registers the gRPC health check service and starts a
// background probe that flips serving status with dependency health.
func RegisterHealthServer(grpcServer *grpc.Server, db *database.PostgresDB, c *cache.RedisCache) {
	healthServer := health.NewServer()

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			healthy := true
			if db != nil {
				if err := db.Ping(ctx); err != nil {
					healthy = false
				}
			}
			if healthy && c != nil {
				if err := c.Client().Ping(ctx).Err(); err != nil {
					healthy = false
				}
			}
			cancel()

			status := grpc_health_v1.HealthCheckResponse_SERVING
			if !healthy {
				status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			}
			healthServer.SetServingStatus("", status)
			healthServer.SetServingStatus(serviceName, status)
		}
	}()

	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
}
