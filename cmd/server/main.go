package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ErickGoytia/CuidaTec/internal/auth"
	"github.com/ErickGoytia/CuidaTec/internal/config"
	"github.com/ErickGoytia/CuidaTec/internal/controllers"
	"github.com/ErickGoytia/CuidaTec/internal/database"
	"github.com/ErickGoytia/CuidaTec/internal/services"
)

func main() {
	// Cargar las configs (.env + defaults de desarrollo)
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Falla al crear logger: %v", err)
	}
	defer logger.Sync()

	// Conectar al banco (pool acotado a 10 conexiones)
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("falla al conectar base de datos", zap.Error(err))
	}

	// Instanciar servicios
	estadoCatalog := services.NewEstadoCatalog(db)
	reporteSvc := services.NewReporteService(db, estadoCatalog)
	estudianteSvc := services.NewEstudianteService(db)
	tipSvc := services.NewTipService(db)

	// Crear controllers
	authCtrl := controllers.NewAuthController(auth.FixedCredentials{}, cfg.JWTSecret, logger)
	reporteCtrl := controllers.NewReporteController(reporteSvc, logger)
	estudianteCtrl := controllers.NewEstudianteController(estudianteSvc, logger)
	tipCtrl := controllers.NewTipController(tipSvc, logger)
	healthCtrl := controllers.NewHealthController()

	// Inicializar Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Registrar rutas; las del panel exigen rol admin
	admin := auth.Require(cfg.JWTSecret, logger, "admin")
	api := e.Group("/api")
	authCtrl.Register(api)
	reporteCtrl.Register(api, admin)
	estudianteCtrl.Register(api, admin)
	tipCtrl.Register(api)
	healthCtrl.Register(api)

	// Correr servidor
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
