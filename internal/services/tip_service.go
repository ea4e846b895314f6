package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// TipService expone los consejos de la página pública.
type TipService interface {
	// ListarTips devuelve todos los tips en orden de inserción.
	ListarTips(ctx context.Context) ([]models.Tip, error)
}

type tipService struct {
	db *gorm.DB
}

// NewTipService inyecta la dependencia *gorm.DB y devuelve una
// instancia de TipService lista para usar.
func NewTipService(db *gorm.DB) TipService {
	return &tipService{db: db}
}

func (s *tipService) ListarTips(ctx context.Context) ([]models.Tip, error) {
	var tips []models.Tip
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&tips).Error
	if err != nil {
		return nil, err
	}
	return tips, nil
}
