package services

import "errors"

// Errores de negocio que los controllers traducen a códigos HTTP.
// Cualquier otro error que salga de un servicio es falla de storage
// y termina en 500.
var (
	// ErrDatosObligatorios: falta descripcion o calle al crear.
	ErrDatosObligatorios = errors.New("faltan datos obligatorios")

	// ErrReporteNoEncontrado: el id no corresponde a ningún reporte.
	ErrReporteNoEncontrado = errors.New("reporte no encontrado")

	// ErrAsignacionIncompleta: ni estudiante ni responsable.
	ErrAsignacionIncompleta = errors.New("datos de asignación incompletos")
)
