package models

// Tablas de catálogo: se llenan por migración / administración de la
// base, nunca desde la API.

// Estado es una etiqueta de ciclo de vida de un reporte
// (NUEVO, EN PROCESO, RESUELTO, ...).
type Estado struct {
	EstadoID int64  `gorm:"column:estado_id;primaryKey;autoIncrement" json:"estado_id"`
	Nombre   string `gorm:"column:nombre" json:"nombre"`
}

func (Estado) TableName() string {
	return "estados"
}

type Categoria struct {
	CategoriaID int64  `gorm:"column:categoria_id;primaryKey;autoIncrement" json:"categoria_id"`
	Nombre      string `gorm:"column:nombre" json:"nombre"`
}

func (Categoria) TableName() string {
	return "categorias"
}

type Severidad struct {
	SeveridadID int64  `gorm:"column:severidad_id;primaryKey;autoIncrement" json:"severidad_id"`
	Nombre      string `gorm:"column:nombre" json:"nombre"`
}

func (Severidad) TableName() string {
	return "severidades"
}
