package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "secreto-de-prueba"

func TestGenerarYParsearToken(t *testing.T) {
	token, err := GenerarToken(testSecret, "admin", "admin")
	if err != nil {
		t.Fatalf("esperaba firmar sin error, obtuve: %v", err)
	}

	claims, err := ParsearToken(testSecret, token)
	if err != nil {
		t.Fatalf("esperaba verificar sin error, obtuve: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims no coinciden: %+v", claims)
	}

	// La expiración queda 8 horas adelante
	exp := claims.ExpiresAt.Time
	resto := time.Until(exp)
	if resto < 7*time.Hour || resto > 8*time.Hour {
		t.Errorf("expiración fuera de rango: %v", resto)
	}
}

func TestParsearToken_SecretoIncorrecto(t *testing.T) {
	token, err := GenerarToken(testSecret, "usuario", "user")
	if err != nil {
		t.Fatalf("esperaba firmar sin error, obtuve: %v", err)
	}

	if _, err := ParsearToken("otro-secreto", token); err == nil {
		t.Fatal("un token firmado con otro secreto debe rechazarse")
	}
}

func TestParsearToken_Expirado(t *testing.T) {
	// Token firmado a mano con expiración en el pasado
	now := time.Now().UTC()
	claims := Claims{
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("esperaba firmar sin error, obtuve: %v", err)
	}

	_, err = ParsearToken(testSecret, token)
	if err == nil {
		t.Fatal("un token expirado debe rechazarse")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("esperaba ErrTokenExpired, obtuve: %v", err)
	}
}

func TestParsearToken_Basura(t *testing.T) {
	if _, err := ParsearToken(testSecret, "no-es-un-jwt"); err == nil {
		t.Fatal("una cadena arbitraria debe rechazarse")
	}
}

func TestFixedCredentials(t *testing.T) {
	creds := FixedCredentials{}

	casos := []struct {
		username, password, role string
		ok                       bool
	}{
		{"admin", "teclag", "admin", true},
		{"usuario", "teclag", "user", true},
		{"admin", "mala", "", false},
		{"usuario", "", "", false},
		{"otro", "teclag", "", false},
		{"", "", "", false},
	}
	for _, c := range casos {
		role, ok := creds.Verificar(c.username, c.password)
		if ok != c.ok || role != c.role {
			t.Errorf("Verificar(%q, %q) = (%q, %v), esperaba (%q, %v)",
				c.username, c.password, role, ok, c.role, c.ok)
		}
	}
}
