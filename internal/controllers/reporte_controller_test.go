package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ErickGoytia/CuidaTec/internal/auth"
	"github.com/ErickGoytia/CuidaTec/internal/models"
	"github.com/ErickGoytia/CuidaTec/internal/services"
)

const testSecret = "secreto-de-prueba"

// setupAPI arma la aplicación completa (echo + servicios reales sobre
// SQLite en memoria) igual que main, para probar las rutas de punta a
// punta.
func setupAPI(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("no fue posible abrir DB de prueba: %v", err)
	}
	err = db.AutoMigrate(
		&models.Estado{},
		&models.Categoria{},
		&models.Severidad{},
		&models.Ubicacion{},
		&models.Reporte{},
		&models.HistorialEstado{},
		&models.Estudiante{},
		&models.Asignacion{},
		&models.Tip{},
	)
	if err != nil {
		t.Fatalf("falla en la migración de los modelos: %v", err)
	}
	for _, nombre := range []string{"NUEVO", "EN PROCESO", "RESUELTO"} {
		if err := db.Create(&models.Estado{Nombre: nombre}).Error; err != nil {
			t.Fatalf("falla al sembrar estado %s: %v", nombre, err)
		}
	}

	logger := zap.NewNop()
	estadoCatalog := services.NewEstadoCatalog(db)

	e := echo.New()
	admin := auth.Require(testSecret, logger, "admin")
	api := e.Group("/api")
	NewAuthController(auth.FixedCredentials{}, testSecret, logger).Register(api)
	NewReporteController(services.NewReporteService(db, estadoCatalog), logger).Register(api, admin)
	NewEstudianteController(services.NewEstudianteService(db), logger).Register(api, admin)
	NewTipController(services.NewTipService(db), logger).Register(api)
	NewHealthController().Register(api)
	return e, db
}

// doRequest ejecuta una request JSON contra la aplicación de prueba.
func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// loginAs hace login y regresa el token emitido.
func loginAs(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login de %s falló con %d: %s", username, rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta de login ilegible: %v", err)
	}
	return resp["token"]
}

func TestLogin(t *testing.T) {
	e, _ := setupAPI(t)

	// Sin credenciales
	rec := doRequest(e, http.MethodPost, "/api/login", "", `{"username":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400 sin password, obtuve: %d", rec.Code)
	}

	// Credenciales inválidas
	rec = doRequest(e, http.MethodPost, "/api/login", "", `{"username":"admin","password":"mala"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("esperaba 401 con password mala, obtuve: %d", rec.Code)
	}

	// Cada cuenta regresa su rol configurado
	for _, c := range []struct{ username, role string }{
		{"admin", "admin"},
		{"usuario", "user"},
	} {
		rec = doRequest(e, http.MethodPost, "/api/login", "",
			`{"username":"`+c.username+`","password":"teclag"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("esperaba 200 para %s, obtuve: %d", c.username, rec.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("respuesta ilegible: %v", err)
		}
		if resp["role"] != c.role {
			t.Errorf("rol esperado %q para %s, obtuve: %q", c.role, c.username, resp["role"])
		}
		if resp["token"] == "" {
			t.Errorf("login de %s debe regresar token", c.username)
		}
	}
}

func TestRutasAdmin_Proteccion(t *testing.T) {
	e, _ := setupAPI(t)
	userToken := loginAs(t, e, "usuario", "teclag")

	rutas := []struct{ method, path string }{
		{http.MethodGet, "/api/reports"},
		{http.MethodGet, "/api/reports/1/detail"},
		{http.MethodPatch, "/api/reports/1/resolve"},
		{http.MethodDelete, "/api/reports/1"},
		{http.MethodPost, "/api/reports/1/assign"},
		{http.MethodGet, "/api/students"},
	}
	for _, r := range rutas {
		// Sin token: 401
		rec := doRequest(e, r.method, r.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s sin token: esperaba 401, obtuve %d", r.method, r.path, rec.Code)
		}
		// Token válido pero de rol user: 403
		rec = doRequest(e, r.method, r.path, userToken, "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s con rol user: esperaba 403, obtuve %d", r.method, r.path, rec.Code)
		}
	}
}

func TestCrearReporte_Validacion(t *testing.T) {
	e, db := setupAPI(t)

	rec := doRequest(e, http.MethodPost, "/api/reports", "", `{"descripcion":"fuga"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400 sin calle, obtuve: %d", rec.Code)
	}

	var ubicaciones int64
	if err := db.Model(&models.Ubicacion{}).Count(&ubicaciones).Error; err != nil {
		t.Fatalf("falla al contar ubicaciones: %v", err)
	}
	if ubicaciones != 0 {
		t.Errorf("una alta rechazada no debe escribir nada, obtuve: %d", ubicaciones)
	}
}

// TestEscenarioAdmin recorre el flujo completo del panel: login,
// alta ciudadana, listado, resolución, detalle y borrado lógico.
func TestEscenarioAdmin(t *testing.T) {
	e, _ := setupAPI(t)
	token := loginAs(t, e, "admin", "teclag")

	// Alta pública del reporte
	rec := doRequest(e, http.MethodPost, "/api/reports", "",
		`{"calle":"Av. X","descripcion":"fuga de agua"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("esperaba 201 al crear, obtuve %d: %s", rec.Code, rec.Body.String())
	}
	var creado struct {
		OK        bool  `json:"ok"`
		ReporteID int64 `json:"reporte_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &creado); err != nil {
		t.Fatalf("respuesta de alta ilegible: %v", err)
	}
	if !creado.OK || creado.ReporteID <= 0 {
		t.Fatalf("alta sin id válido: %+v", creado)
	}

	// El listado lo muestra primero, con su estado inicial
	rec = doRequest(e, http.MethodGet, "/api/reports", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 al listar, obtuve: %d", rec.Code)
	}
	var listado []models.ReporteResumen
	if err := json.Unmarshal(rec.Body.Bytes(), &listado); err != nil {
		t.Fatalf("listado ilegible: %v", err)
	}
	if len(listado) != 1 || listado[0].ReporteID != creado.ReporteID {
		t.Fatalf("listado inesperado: %+v", listado)
	}
	if listado[0].Estado != "NUEVO" {
		t.Errorf("esperaba estado NUEVO, obtuve: %q", listado[0].Estado)
	}

	// Resolver
	rec = doRequest(e, http.MethodPatch, "/api/reports/1/resolve", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 al resolver, obtuve %d: %s", rec.Code, rec.Body.String())
	}

	// El detalle trae una transición y fecha de cierre
	rec = doRequest(e, http.MethodGet, "/api/reports/1/detail", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 en detalle, obtuve: %d", rec.Code)
	}
	var detalle models.ReporteDetalle
	if err := json.Unmarshal(rec.Body.Bytes(), &detalle); err != nil {
		t.Fatalf("detalle ilegible: %v", err)
	}
	if len(detalle.Historial) != 1 {
		t.Fatalf("esperaba 1 entrada de historial, obtuve: %d", len(detalle.Historial))
	}
	if detalle.Info.FechaCierre == nil {
		t.Error("fecha_cierre debe venir no nula tras resolver")
	}
	if detalle.Info.Estado == nil || *detalle.Info.Estado != "RESUELTO" {
		t.Errorf("esperaba estado RESUELTO, obtuve: %v", detalle.Info.Estado)
	}

	// Borrado lógico y listado vacío
	rec = doRequest(e, http.MethodDelete, "/api/reports/1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 al eliminar, obtuve: %d", rec.Code)
	}
	rec = doRequest(e, http.MethodGet, "/api/reports", token, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &listado); err != nil {
		t.Fatalf("listado ilegible: %v", err)
	}
	if len(listado) != 0 {
		t.Errorf("el reporte eliminado no debe listarse: %+v", listado)
	}
}

func TestAsignarReporte_Rutas(t *testing.T) {
	e, db := setupAPI(t)
	token := loginAs(t, e, "admin", "teclag")

	rec := doRequest(e, http.MethodPost, "/api/reports", "",
		`{"calle":"Av. X","descripcion":"fuga de agua"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("falla al crear reporte: %d", rec.Code)
	}

	// Sin datos: 400
	rec = doRequest(e, http.MethodPost, "/api/reports/1/assign", token, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400 sin datos de asignación, obtuve: %d", rec.Code)
	}

	// Con responsable: 201
	rec = doRequest(e, http.MethodPost, "/api/reports/1/assign", token, `{"responsable":"Cuadrilla Norte"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("esperaba 201 al asignar, obtuve %d: %s", rec.Code, rec.Body.String())
	}

	var total int64
	if err := db.Model(&models.Asignacion{}).Count(&total).Error; err != nil {
		t.Fatalf("falla al contar asignaciones: %v", err)
	}
	if total != 1 {
		t.Errorf("esperaba 1 asignación, obtuve: %d", total)
	}
}

func TestDetalle_IDInvalidoYNoExiste(t *testing.T) {
	e, _ := setupAPI(t)
	token := loginAs(t, e, "admin", "teclag")

	rec := doRequest(e, http.MethodGet, "/api/reports/abc/detail", token, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("esperaba 400 con id no numérico, obtuve: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/reports/999/detail", token, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("esperaba 404 con id inexistente, obtuve: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPatch, "/api/reports/999/resolve", token, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("esperaba 404 al resolver inexistente, obtuve: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodDelete, "/api/reports/999", token, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("esperaba 404 al eliminar inexistente, obtuve: %d", rec.Code)
	}
}

func TestRutasPublicas(t *testing.T) {
	e, db := setupAPI(t)

	// Health sin autenticación
	rec := doRequest(e, http.MethodGet, "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 en health, obtuve: %d", rec.Code)
	}
	var health map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("health ilegible: %v", err)
	}
	if health["ok"] != true || health["time"] == "" {
		t.Errorf("health inesperado: %+v", health)
	}

	// Tips sin autenticación
	if err := db.Create(&models.Tip{Titulo: "Revisa tus llaves", Descripcion: "Cierra bien."}).Error; err != nil {
		t.Fatalf("falla al sembrar tip: %v", err)
	}
	rec = doRequest(e, http.MethodGet, "/api/tips", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 en tips, obtuve: %d", rec.Code)
	}
	var tips []models.Tip
	if err := json.Unmarshal(rec.Body.Bytes(), &tips); err != nil {
		t.Fatalf("tips ilegibles: %v", err)
	}
	if len(tips) != 1 {
		t.Errorf("esperaba 1 tip, obtuve: %d", len(tips))
	}
}

func TestListarEstudiantes_Ruta(t *testing.T) {
	e, db := setupAPI(t)
	token := loginAs(t, e, "admin", "teclag")

	if err := db.Create(&models.Estudiante{Matricula: "A01", Nombre: "Ana López", Correo: "ana@tec.mx"}).Error; err != nil {
		t.Fatalf("falla al sembrar estudiante: %v", err)
	}

	rec := doRequest(e, http.MethodGet, "/api/students", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("esperaba 200 en students, obtuve: %d", rec.Code)
	}
	var estudiantes []models.Estudiante
	if err := json.Unmarshal(rec.Body.Bytes(), &estudiantes); err != nil {
		t.Fatalf("students ilegibles: %v", err)
	}
	if len(estudiantes) != 1 || estudiantes[0].Matricula != "A01" {
		t.Errorf("students inesperados: %+v", estudiantes)
	}
}
