package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ErickGoytia/CuidaTec/internal/services"
)

// TipController expone los consejos de la página pública.
type TipController struct {
	svc    services.TipService
	logger *zap.Logger
}

// NewTipController es la función fábrica que recibe una implementación
// de TipService y devuelve un TipController configurado.
func NewTipController(svc services.TipService, logger *zap.Logger) *TipController {
	return &TipController{svc: svc, logger: logger}
}

// Register asocia GET /tips; es la única lectura sin autenticación.
func (ctr *TipController) Register(g *echo.Group) {
	g.GET("/tips", ctr.ListarTips)
}

// ListarTips trata GET /tips.
func (ctr *TipController) ListarTips(c echo.Context) error {
	tips, err := ctr.svc.ListarTips(c.Request().Context())
	if err != nil {
		ctr.logger.Error("falló listar tips", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Tips failed"})
	}
	return c.JSON(http.StatusOK, tips)
}
