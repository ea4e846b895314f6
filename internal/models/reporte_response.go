package models

// Proyecciones JSON que consume el panel de administración. Las fechas
// van formateadas como "2006-01-02 15:04"; un puntero nil se serializa
// como null (fecha ausente o centinela de fecha cero).

// ReporteResumen es un renglón del listado de reportes.
type ReporteResumen struct {
	ReporteID    int64   `json:"reporte_id"`
	Folio        *string `json:"folio"`
	Titulo       string  `json:"titulo"`
	Estado       string  `json:"estado"`
	FechaReporte string  `json:"fecha_reporte"`
}

// ReporteInfo es la ficha completa de un reporte en el detalle.
type ReporteInfo struct {
	ReporteID          int64   `json:"reporte_id"`
	Folio              *string `json:"folio"`
	Titulo             string  `json:"titulo"`
	Descripcion        string  `json:"descripcion"`
	FechaReporte       *string `json:"fecha_reporte"`
	FechaCierre        *string `json:"fecha_cierre"`
	Estado             *string `json:"estado"`
	Categoria          *string `json:"categoria"`
	Severidad          *string `json:"severidad"`
	Calle              *string `json:"calle"`
	Colonia            *string `json:"colonia"`
	CodigoPostal       *string `json:"codigo_postal"`
	Referencias        *string `json:"referencias"`
	ReportanteNombre   *string `json:"reportante_nombre"`
	ReportanteContacto *string `json:"reportante_contacto"`
}

// HistorialEntrada es una transición de estado dentro del detalle.
type HistorialEntrada struct {
	HistorialID    int64   `json:"historial_id"`
	EstadoAnterior *string `json:"estado_anterior"`
	EstadoNuevo    *string `json:"estado_nuevo"`
	Observaciones  string  `json:"observaciones"`
	FechaCambio    string  `json:"fecha_cambio"`
}

// AsignacionEntrada es una asignación dentro del detalle.
type AsignacionEntrada struct {
	AsignacionID     int64   `json:"asignacion_id"`
	FechaAsignacion  string  `json:"fecha_asignacion"`
	Responsable      *string `json:"responsable"`
	Matricula        *string `json:"matricula"`
	EstudianteNombre *string `json:"estudiante_nombre"`
	Correo           *string `json:"correo"`
}

// ReporteDetalle agrupa la ficha, el historial (más antiguo primero)
// y las asignaciones (más reciente primero).
type ReporteDetalle struct {
	Info         ReporteInfo         `json:"info"`
	Historial    []HistorialEntrada  `json:"historial"`
	Asignaciones []AsignacionEntrada `json:"asignaciones"`
}
