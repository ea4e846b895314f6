package models

import "time"

// HistorialEstado registra cada transición de estado de un reporte.
// Los registros son inmutables: solo se insertan como efecto de una
// transición, nunca se actualizan ni se eliminan.
type HistorialEstado struct {
	HistorialID      int64     `gorm:"column:historial_id;primaryKey;autoIncrement" json:"historial_id"`
	ReporteID        int64     `gorm:"column:reporte_id" json:"reporte_id"`
	EstadoAnteriorID *int64    `gorm:"column:estado_anterior_id" json:"estado_anterior_id"`
	EstadoNuevoID    *int64    `gorm:"column:estado_nuevo_id" json:"estado_nuevo_id"`
	Observaciones    string    `gorm:"column:observaciones" json:"observaciones"`
	FechaCambio      time.Time `gorm:"column:fecha_cambio" json:"fecha_cambio"`

	EstadoAnterior *Estado `gorm:"foreignKey:EstadoAnteriorID;references:EstadoID" json:"estado_anterior,omitempty"`
	EstadoNuevo    *Estado `gorm:"foreignKey:EstadoNuevoID;references:EstadoID" json:"estado_nuevo,omitempty"`
}

func (HistorialEstado) TableName() string {
	return "historial_estados"
}
