package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// EstadoCatalog resuelve los estados especiales del ciclo de vida por
// nombre. Los estados viven en una tabla de catálogo, no en un enum:
// la resolución es una consulta en tiempo de ejecución y el servicio
// de reportes depende de esta abstracción, no de las queries.
type EstadoCatalog interface {
	// EstadoInicial devuelve el id del estado con el que nace un
	// reporte, o nil si el catálogo no tiene ninguno configurado.
	EstadoInicial(ctx context.Context) (*int64, error)

	// EstadoResuelto devuelve el id del estado terminal, o nil si el
	// catálogo no tiene ninguno configurado.
	EstadoResuelto(ctx context.Context) (*int64, error)
}

type estadoCatalog struct {
	db *gorm.DB
}

// NewEstadoCatalog inyecta la dependencia *gorm.DB y devuelve una
// instancia de EstadoCatalog lista para usar.
func NewEstadoCatalog(db *gorm.DB) EstadoCatalog {
	return &estadoCatalog{db: db}
}

func (s *estadoCatalog) EstadoInicial(ctx context.Context) (*int64, error) {
	return s.buscarPorNombres(ctx, []string{"NUEVO", "PENDIENTE"})
}

func (s *estadoCatalog) EstadoResuelto(ctx context.Context) (*int64, error) {
	return s.buscarPorNombres(ctx, []string{"RESUELTO", "CERRADO"})
}

// buscarPorNombres hace el lookup insensible a mayúsculas y se queda
// con el id más bajo cuando hay varios candidatos.
func (s *estadoCatalog) buscarPorNombres(ctx context.Context, nombres []string) (*int64, error) {
	var estado models.Estado
	err := s.db.WithContext(ctx).
		Where("UPPER(nombre) IN ?", nombres).
		Order("estado_id ASC").
		First(&estado).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &estado.EstadoID, nil
}
