package models

import "time"

// Asignacion liga un reporte con una brigada estudiantil y/o un
// responsable en texto libre. Un reporte puede acumular varias
// asignaciones: son historial de custodia, no propiedad exclusiva.
type Asignacion struct {
	AsignacionID    int64     `gorm:"column:asignacion_id;primaryKey;autoIncrement" json:"asignacion_id"`
	ReporteID       int64     `gorm:"column:reporte_id" json:"reporte_id"`
	EstudianteID    *int64    `gorm:"column:estudiante_id" json:"estudiante_id"`
	Responsable     *string   `gorm:"column:responsable" json:"responsable"`
	FechaAsignacion time.Time `gorm:"column:fecha_asignacion" json:"fecha_asignacion"`

	Estudiante *Estudiante `gorm:"foreignKey:EstudianteID;references:EstudianteID" json:"estudiante,omitempty"`
}

func (Asignacion) TableName() string {
	return "asignaciones"
}
