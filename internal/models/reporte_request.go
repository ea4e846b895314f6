package models

// JSON que manda el front-end al crear un reporte.
type ReporteRequest struct {
	Calle              string `json:"calle"`
	Colonia            string `json:"colonia"`
	CodigoPostal       string `json:"codigo_postal"`
	Referencias        string `json:"referencias"`
	Titulo             string `json:"titulo"`
	Descripcion        string `json:"descripcion"`
	CategoriaID        *int64 `json:"categoria_id"`
	SeveridadID        *int64 `json:"severidad_id"`
	ReportanteNombre   string `json:"reportante_nombre"`
	ReportanteContacto string `json:"reportante_contacto"`
}

// JSON para asignar un reporte a una brigada o responsable.
// Al menos uno de los dos campos debe venir.
type AsignacionRequest struct {
	EstudianteID *int64 `json:"estudiante_id"`
	Responsable  string `json:"responsable"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
