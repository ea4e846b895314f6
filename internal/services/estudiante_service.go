package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// EstudianteService define el contrato para consultar el padrón de
// brigadas estudiantiles. El padrón se administra fuera de esta API.
type EstudianteService interface {
	// ListarEstudiantes devuelve todos los estudiantes ordenados por
	// nombre.
	ListarEstudiantes(ctx context.Context) ([]models.Estudiante, error)
}

type estudianteService struct {
	db *gorm.DB
}

// NewEstudianteService inyecta la dependencia *gorm.DB y devuelve una
// instancia de EstudianteService lista para usar.
func NewEstudianteService(db *gorm.DB) EstudianteService {
	return &estudianteService{db: db}
}

func (s *estudianteService) ListarEstudiantes(ctx context.Context) ([]models.Estudiante, error) {
	var estudiantes []models.Estudiante
	err := s.db.WithContext(ctx).
		Order("nombre ASC").
		Find(&estudiantes).Error
	if err != nil {
		return nil, err
	}
	return estudiantes, nil
}
