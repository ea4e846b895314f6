package models

// Ubicacion es la dirección de un reporte. Cada ubicación pertenece
// a un solo reporte: se crea junto con él y nunca se reutiliza.
type Ubicacion struct {
	UbicacionID  int64  `gorm:"column:ubicacion_id;primaryKey;autoIncrement" json:"ubicacion_id"`
	Calle        string `gorm:"column:calle" json:"calle"`
	Colonia      string `gorm:"column:colonia" json:"colonia"`
	CodigoPostal string `gorm:"column:codigo_postal" json:"codigo_postal"`
	Referencias  string `gorm:"column:referencias" json:"referencias"`
}

func (Ubicacion) TableName() string {
	return "ubicaciones"
}
