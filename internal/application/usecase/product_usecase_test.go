package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/application/usecase"
	"github.com/mialmacen/pos-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_UpsertCrea(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)

	resp, err := uc.Upsert("", dto.ProductRequest{
		Code:          "A-001",
		Description:   "  Pan  ",
		PurchasePrice: dec(50),
		SalePrice:     dec(100),
		Stock:         10,
		StockMin:      3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Pan", resp.Description, "la descripción se guarda sin espacios")
	assert.False(t, resp.Critical)

	list := uc.List(dto.ListRequest{})
	assert.Equal(t, 1, list.Total)
}

func TestProduct_UpsertReemplazaEntero(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	id := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10, StockMin: 3})

	// El reemplazo es total: los campos no enviados quedan en cero, incluido
	// el stock.
	resp, err := uc.Upsert(id, dto.ProductRequest{Description: "Pan lactal", SalePrice: dec(150)})
	require.NoError(t, err)
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "Pan lactal", resp.Description)
	assert.Equal(t, 0, resp.Stock)
	assert.True(t, resp.Critical, "stock 0 con mínimo 0 es crítico")

	list := uc.List(dto.ListRequest{})
	assert.Equal(t, 1, list.Total, "reemplazar no duplica")
}

func TestProduct_UpsertValida(t *testing.T) {
	uc := usecase.NewProductUseCase(newTestStore(t))

	_, err := uc.Upsert("", dto.ProductRequest{Description: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert("", dto.ProductRequest{Description: "Pan", SalePrice: dec(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert("", dto.ProductRequest{Description: "Pan", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_AdjustStock(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	id := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10, StockMin: 3})

	resp, err := uc.AdjustStock(id, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stock)
	assert.Equal(t, "Pan", resp.Description, "el ajuste no toca los metadatos")
	assert.True(t, resp.Critical)

	_, err = uc.AdjustStock("no-existe", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AdjustStock(id, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_DeleteEsIdempotente(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	id := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 1})

	require.NoError(t, uc.Delete(id))
	assert.Equal(t, 0, uc.List(dto.ListRequest{}).Total)
	assert.NoError(t, uc.Delete(id), "borrar lo que no existe no es un error")
}

func TestProduct_ListFiltra(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	seedProduct(t, store, dto.ProductRequest{Code: "YER-01", Description: "Yerba 1kg", SalePrice: dec(1200), Stock: 5})
	seedProduct(t, store, dto.ProductRequest{Code: "AZU-01", Description: "Azúcar", SalePrice: dec(900), Stock: 8})

	// Subcadena sin distinguir mayúsculas, sobre descripción o código
	assert.Equal(t, 1, uc.List(dto.ListRequest{Query: "YERBA"}).Total)
	assert.Equal(t, 1, uc.List(dto.ListRequest{Query: "azu-"}).Total)
	assert.Equal(t, 0, uc.List(dto.ListRequest{Query: "fideos"}).Total)
	assert.Equal(t, 2, uc.List(dto.ListRequest{}).Total)
}

func TestProduct_ListOrdena(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	seedProduct(t, store, dto.ProductRequest{Description: "banana", SalePrice: dec(900), Stock: 2})
	seedProduct(t, store, dto.ProductRequest{Description: "Azúcar", SalePrice: dec(1200), Stock: 10})
	seedProduct(t, store, dto.ProductRequest{Description: "Criollitos", SalePrice: dec(100), Stock: 5})

	// Orden por descripción sin distinguir mayúsculas
	byName := uc.List(dto.ListRequest{SortKey: "descripcion"})
	require.Equal(t, 3, byName.Total)
	assert.Equal(t, "Azúcar", byName.Items[0].Description)
	assert.Equal(t, "banana", byName.Items[1].Description)
	assert.Equal(t, "Criollitos", byName.Items[2].Description)

	// Las claves numéricas comparan como números, no como texto: 900 < 1200
	byPrice := uc.List(dto.ListRequest{SortKey: "precioVenta"})
	assert.Equal(t, "Criollitos", byPrice.Items[0].Description)
	assert.Equal(t, "banana", byPrice.Items[1].Description)
	assert.Equal(t, "Azúcar", byPrice.Items[2].Description)

	// Descendente invierte
	desc := uc.List(dto.ListRequest{SortKey: "stock", SortDir: "desc"})
	assert.Equal(t, 10, desc.Items[0].Stock)
	assert.Equal(t, 2, desc.Items[2].Stock)
}

func TestProduct_ListOrdenEstable(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewProductUseCase(store)
	seedProduct(t, store, dto.ProductRequest{Description: "Primero", SalePrice: dec(100), Stock: 5})
	seedProduct(t, store, dto.ProductRequest{Description: "Segundo", SalePrice: dec(100), Stock: 5})
	seedProduct(t, store, dto.ProductRequest{Description: "Tercero", SalePrice: dec(100), Stock: 5})

	// Con claves iguales se conserva el orden de llegada, ascendente o no
	for _, dir := range []string{"asc", "desc"} {
		list := uc.List(dto.ListRequest{SortKey: "precioVenta", SortDir: dir})
		require.Equal(t, 3, list.Total)
		assert.Equal(t, "Primero", list.Items[0].Description, "dir=%s", dir)
		assert.Equal(t, "Segundo", list.Items[1].Description, "dir=%s", dir)
		assert.Equal(t, "Tercero", list.Items[2].Description, "dir=%s", dir)
	}
}
