package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/ErickGoytia/CuidaTec/internal/config"
	"github.com/ErickGoytia/CuidaTec/internal/database/migrations"
)

func main() {
	cfg := config.Load()

	// Conectar al banco
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Error al conectar al banco:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error al cerrar conexión: %v", err)
		}
	}()

	// Probar conexión
	if err := db.Ping(); err != nil {
		log.Fatal("Error al hacer ping al banco:", err)
	}

	// Leer el archivo SQL embebido
	sqlBytes, err := migrations.Files.ReadFile("cuidatec_schema.sql")
	if err != nil {
		log.Fatal("Error al leer SQL embebido:", err)
	}

	fmt.Println("Ejecutando migración del esquema CuidaTec...")

	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal("Error al ejecutar migración:", err)
	}

	// Verificar las tablas creadas
	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('estados', 'categorias', 'severidades',
		                     'ubicaciones', 'reportes', 'historial_estados',
		                     'estudiantes', 'asignaciones', 'tips')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal("Error al verificar tablas:", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Error al cerrar rows: %v", err)
		}
	}()

	fmt.Println("Tablas listas:")
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("Error al escanear tabla: %v", err)
			continue
		}
		fmt.Printf("  - %s\n", table)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("Error al recorrer tablas:", err)
	}

	fmt.Println("Migración completada.")
}
