package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthController responde el ping de disponibilidad.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctr *HealthController) Register(g *echo.Group) {
	g.GET("/health", ctr.Health)
}

func (ctr *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
