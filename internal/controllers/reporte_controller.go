package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ErickGoytia/CuidaTec/internal/models"
	"github.com/ErickGoytia/CuidaTec/internal/services"
)

// ReporteController agrupa las rutas de reportes: el alta pública y
// las operaciones del panel de administración.
type ReporteController struct {
	// svc es la interfaz de servicio que expone las operaciones del
	// ciclo de vida del reporte.
	svc    services.ReporteService
	logger *zap.Logger
}

// NewReporteController es la función fábrica que recibe una
// implementación de ReporteService y devuelve un ReporteController
// configurado.
func NewReporteController(svc services.ReporteService, logger *zap.Logger) *ReporteController {
	return &ReporteController{svc: svc, logger: logger}
}

// Register asocia las rutas de reportes a este controller. Las rutas
// del panel llevan el middleware admin; el alta es pública.
func (ctr *ReporteController) Register(g *echo.Group, admin echo.MiddlewareFunc) {
	g.POST("/reports", ctr.CrearReporte)
	g.GET("/reports", ctr.ListarReportes, admin)
	g.GET("/reports/:id/detail", ctr.DetalleReporte, admin)
	g.PATCH("/reports/:id/resolve", ctr.ResolverReporte, admin)
	g.DELETE("/reports/:id", ctr.EliminarReporte, admin)
	g.POST("/reports/:id/assign", ctr.AsignarReporte, admin)
}

// CrearReporte trata POST /reports (página reportar).
func (ctr *ReporteController) CrearReporte(c echo.Context) error {
	req := new(models.ReporteRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	id, err := ctr.svc.CrearReporte(c.Request().Context(), req)
	if errors.Is(err, services.ErrDatosObligatorios) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Faltan datos obligatorios"})
	}
	if err != nil {
		ctr.logger.Error("falló crear reporte", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"ok": true, "reporte_id": id})
}

// ListarReportes trata GET /reports (solo admin).
func (ctr *ReporteController) ListarReportes(c echo.Context) error {
	reportes, err := ctr.svc.ListarReportes(c.Request().Context())
	if err != nil {
		ctr.logger.Error("falló listar reportes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "List failed"})
	}
	return c.JSON(http.StatusOK, reportes)
}

// DetalleReporte trata GET /reports/:id/detail (solo admin).
func (ctr *ReporteController) DetalleReporte(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ID inválido"})
	}

	detalle, err := ctr.svc.DetalleReporte(c.Request().Context(), id)
	if errors.Is(err, services.ErrReporteNoEncontrado) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Reporte no encontrado"})
	}
	if err != nil {
		ctr.logger.Error("falló detalle de reporte", zap.Int64("reporte_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Detail failed"})
	}

	return c.JSON(http.StatusOK, detalle)
}

// ResolverReporte trata PATCH /reports/:id/resolve (solo admin).
func (ctr *ReporteController) ResolverReporte(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ID inválido"})
	}

	err = ctr.svc.ResolverReporte(c.Request().Context(), id)
	if errors.Is(err, services.ErrReporteNoEncontrado) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Reporte no encontrado"})
	}
	if err != nil {
		ctr.logger.Error("falló resolver reporte", zap.Int64("reporte_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Resolve failed"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// EliminarReporte trata DELETE /reports/:id (solo admin, borrado
// lógico).
func (ctr *ReporteController) EliminarReporte(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ID inválido"})
	}

	err = ctr.svc.EliminarReporte(c.Request().Context(), id)
	if errors.Is(err, services.ErrReporteNoEncontrado) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Reporte no encontrado"})
	}
	if err != nil {
		ctr.logger.Error("falló eliminar reporte", zap.Int64("reporte_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Delete failed"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// AsignarReporte trata POST /reports/:id/assign (solo admin).
func (ctr *ReporteController) AsignarReporte(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Datos de asignación incompletos"})
	}

	req := new(models.AsignacionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	err = ctr.svc.AsignarReporte(c.Request().Context(), id, req)
	if errors.Is(err, services.ErrAsignacionIncompleta) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Datos de asignación incompletos"})
	}
	if err != nil {
		ctr.logger.Error("falló asignar reporte", zap.Int64("reporte_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Assign failed"})
	}

	return c.JSON(http.StatusCreated, map[string]bool{"ok": true})
}

// parseID valida el parámetro :id (entero positivo).
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return id, nil
}
