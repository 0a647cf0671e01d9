package handler

import (
	"net"
	"os"
	"time"

	"github.com/fadilmartias/feedback-service/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)
	app.Get("/health/:path_echo", h.Health)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	payload := dto.Health{
		Status:        fiber.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     hostIP(),
	}
	if echo := c.Query("echo"); echo != "" {
		payload.Echo = &echo
	}
	if pathEcho := c.Params("path_echo"); pathEcho != "" {
		payload.PathEcho = &pathEcho
	}
	return c.JSON(payload)
}

func hostIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupIP(hostname)
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			return v4.String()
		}
	}
	return "127.0.0.1"
}
