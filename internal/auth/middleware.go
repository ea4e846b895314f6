package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClaimsKey es la llave bajo la que el middleware deja las claims en el
// contexto de echo para el handler protegido.
const ClaimsKey = "user"

// Require protege una ruta con token bearer. Si requiredRole no está
// vacío, además exige ese rol. Sin estado: cada request se verifica
// por sí sola.
func Require(secret string, logger *zap.Logger, requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No token"})
			}

			claims, err := ParsearToken(secret, token)
			if err != nil {
				logger.Warn("token rechazado", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token inválido"})
			}

			if requiredRole != "" && claims.Role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
