package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ErickGoytia/CuidaTec/internal/auth"
	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// AuthController agrupa la ruta de login. No hay sesiones: el login
// solo emite un token firmado que cada request vuelve a verificar.
type AuthController struct {
	// creds es la capacidad inyectable que valida usuario/contraseña;
	// hoy es la tabla fija de dos cuentas.
	creds  auth.CredentialChecker
	secret string
	logger *zap.Logger
}

// NewAuthController es la función fábrica que recibe el verificador de
// credenciales y el secreto de firma y devuelve un AuthController
// configurado.
func NewAuthController(creds auth.CredentialChecker, secret string, logger *zap.Logger) *AuthController {
	return &AuthController{creds: creds, secret: secret, logger: logger}
}

// Register asocia las rutas de autenticación a este controller.
func (ctr *AuthController) Register(g *echo.Group) {
	g.POST("/login", ctr.Login)
}

// Login trata POST /login: valida las credenciales contra la tabla y
// responde con un token de 8 horas y el rol de la cuenta.
func (ctr *AuthController) Login(c echo.Context) error {
	req := new(models.LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Faltan credenciales"})
	}

	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Faltan credenciales"})
	}

	role, ok := ctr.creds.Verificar(req.Username, req.Password)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas"})
	}

	token, err := auth.GenerarToken(ctr.secret, req.Username, role)
	if err != nil {
		ctr.logger.Error("no se pudo firmar el token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token, "role": role})
}
