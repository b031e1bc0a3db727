package middleware

import (
	"errors"
	"time"

	"booking-backend/internal/monitoring"

	"github.com/gofiber/fiber/v2"
)

// Metrics records the latency of every request by its route template.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		monitoring.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
