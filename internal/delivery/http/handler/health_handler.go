package handler

import (
	"context"
	"time"

	"yolearn/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Check pings one dependency. Optional checks degrade the report without
// failing it.
type Check struct {
	Name     string
	Optional bool
	Ping     func(ctx context.Context) error
}

type HealthHandler struct {
	checks  []Check
	timeout time.Duration
}

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
	r.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	res := healthResponse{Status: "ok", Components: make(map[string]string, len(h.checks))}
	code := fiber.StatusOK
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			res.Components[chk.Name] = "down"
			if chk.Optional {
				if res.Status == "ok" {
					res.Status = "degraded"
				}
				continue
			}
			res.Status = "down"
			code = fiber.StatusServiceUnavailable
			continue
		}
		res.Components[chk.Name] = "up"
	}
	return response.Success(c, code, res.Status, res)
}
