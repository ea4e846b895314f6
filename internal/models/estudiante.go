package models

// Estudiante es un miembro de brigada. El padrón se administra fuera
// de esta API; aquí solo se consulta.
type Estudiante struct {
	EstudianteID int64  `gorm:"column:estudiante_id;primaryKey;autoIncrement" json:"estudiante_id"`
	Matricula    string `gorm:"column:matricula" json:"matricula"`
	Nombre       string `gorm:"column:nombre" json:"nombre"`
	Correo       string `gorm:"column:correo" json:"correo"`
}

func (Estudiante) TableName() string {
	return "estudiantes"
}
