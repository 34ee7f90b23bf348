package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
	"github.com/mialmacen/pos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

// newTestStore arma un store sobre un filesystem en memoria.
func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()
	slot := docstore.NewFileSlot(afero.NewMemMapFs(), "pos.json")
	store, err := docstore.Open(slot, logger.Nop())
	require.NoError(t, err)
	return store
}

// seedProduct da de alta un producto y devuelve su id.
func seedProduct(t *testing.T, store *docstore.Store, in dto.ProductRequest) string {
	t.Helper()
	resp, err := usecase.NewProductUseCase(store).Upsert("", in)
	require.NoError(t, err)
	return resp.ID
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// productStock lee el stock vigente de un producto directo del documento.
func productStock(t *testing.T, store *docstore.Store, id string) int {
	t.Helper()
	stock := -1
	store.View(func(doc *entity.Document) {
		if idx := doc.FindProduct(id); idx >= 0 {
			stock = doc.Products[idx].Stock
		}
	})
	require.GreaterOrEqual(t, stock, 0, "producto %s no encontrado", id)
	return stock
}
