package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SlotCounter reports how many request slots of the connection pool are held.
type SlotCounter interface {
	InUse() int64
	Capacity() int64
}

type HealthChecker struct {
	DB    Pinger
	Redis *redis.Client
	Pool  SlotCounter
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	var services []Service
	overallStatus := "healthy"

	if h.DB != nil {
		service := Service{Name: "PostgreSQL"}
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := h.DB.PingContext(ctx); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	}

	if h.Redis != nil {
		service := Service{Name: "Redis"}
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		} else {
			service.Status = "up"
		}
		services = append(services, service)
		cancel()
	}

	if h.Pool != nil {
		inUse, capacity := h.Pool.InUse(), h.Pool.Capacity()
		service := Service{
			Name:    "ConnectionPool",
			Status:  "up",
			Message: fmt.Sprintf("%d/%d in use", inUse, capacity),
		}
		if capacity > 0 && inUse >= capacity {
			service.Status = "saturated"
		}
		services = append(services, service)
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
