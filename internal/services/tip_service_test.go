package services

import (
	"context"
	"testing"

	"github.com/ErickGoytia/CuidaTec/internal/models"
)

// TestListarTips verifica el orden de inserción.
func TestListarTips(t *testing.T) {
	db := setupTestDB(t)

	t1 := models.Tip{Titulo: "Revisa tus llaves", Descripcion: "Cierra bien las llaves."}
	t2 := models.Tip{Titulo: "Reporta fugas", Descripcion: "Una fuga desperdicia miles de litros."}
	for _, tip := range []*models.Tip{&t1, &t2} {
		if err := db.Create(tip).Error; err != nil {
			t.Fatalf("falla al sembrar tip: %v", err)
		}
	}

	svc := NewTipService(db)
	tips, err := svc.ListarTips(context.Background())
	if err != nil {
		t.Fatalf("esperaba sin error, obtuve: %v", err)
	}
	if len(tips) != 2 {
		t.Fatalf("esperaba 2 tips, obtuve: %d", len(tips))
	}
	if tips[0].Titulo != "Revisa tus llaves" {
		t.Errorf("esperaba orden de inserción, obtuve primero: %q", tips[0].Titulo)
	}
}
