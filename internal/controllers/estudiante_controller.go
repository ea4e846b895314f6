package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ErickGoytia/CuidaTec/internal/services"
)

// EstudianteController expone el padrón de brigadas al panel admin.
type EstudianteController struct {
	svc    services.EstudianteService
	logger *zap.Logger
}

// NewEstudianteController es la función fábrica que recibe una
// implementación de EstudianteService y devuelve un
// EstudianteController configurado.
func NewEstudianteController(svc services.EstudianteService, logger *zap.Logger) *EstudianteController {
	return &EstudianteController{svc: svc, logger: logger}
}

// Register asocia GET /students, solo para admin.
func (ctr *EstudianteController) Register(g *echo.Group, admin echo.MiddlewareFunc) {
	g.GET("/students", ctr.ListarEstudiantes, admin)
}

// ListarEstudiantes trata GET /students.
func (ctr *EstudianteController) ListarEstudiantes(c echo.Context) error {
	estudiantes, err := ctr.svc.ListarEstudiantes(c.Request().Context())
	if err != nil {
		ctr.logger.Error("falló listar estudiantes", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Students failed"})
	}
	return c.JSON(http.StatusOK, estudiantes)
}
