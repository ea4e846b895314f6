package models

import "time"

// Reporte representa un reporte ciudadano (fuga, bache, etc.).
// estado_actual_id siempre apunta a un estado válido del catálogo;
// los reportes nunca se borran físicamente, solo con eliminado=1.
type Reporte struct {
	ReporteID          int64      `gorm:"column:reporte_id;primaryKey;autoIncrement" json:"reporte_id"`
	Folio              *string    `gorm:"column:folio" json:"folio"`
	Titulo             string     `gorm:"column:titulo" json:"titulo"`
	Descripcion        string     `gorm:"column:descripcion" json:"descripcion"`
	FechaReporte       time.Time  `gorm:"column:fecha_reporte" json:"fecha_reporte"`
	FechaCierre        *time.Time `gorm:"column:fecha_cierre" json:"fecha_cierre"`
	UbicacionID        int64      `gorm:"column:ubicacion_id" json:"ubicacion_id"`
	CategoriaID        *int64     `gorm:"column:categoria_id" json:"categoria_id"`
	SeveridadID        *int64     `gorm:"column:severidad_id" json:"severidad_id"`
	EstadoActualID     *int64     `gorm:"column:estado_actual_id" json:"estado_actual_id"`
	ReportanteNombre   *string    `gorm:"column:reportante_nombre" json:"reportante_nombre"`
	ReportanteContacto *string    `gorm:"column:reportante_contacto" json:"reportante_contacto"`
	Eliminado          int16      `gorm:"column:eliminado" json:"eliminado"`

	Ubicacion *Ubicacion `gorm:"foreignKey:UbicacionID;references:UbicacionID" json:"ubicacion,omitempty"`
	Estado    *Estado    `gorm:"foreignKey:EstadoActualID;references:EstadoID" json:"estado,omitempty"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID;references:CategoriaID" json:"categoria,omitempty"`
	Severidad *Severidad `gorm:"foreignKey:SeveridadID;references:SeveridadID" json:"severidad,omitempty"`
}

func (Reporte) TableName() string {
	return "reportes"
}
