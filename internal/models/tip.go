package models

// Tip es un consejo de cuidado del agua que se muestra en la página
// pública. Contenido estático, solo lectura.
type Tip struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Titulo      string `gorm:"column:titulo" json:"titulo"`
	Descripcion string `gorm:"column:descripcion" json:"descripcion"`
}

func (Tip) TableName() string {
	return "tips"
}
