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
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_AddMergeaRenglones(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10})

	resp, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)

	// El mismo producto suma cantidad en el renglón existente
	resp, err = uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].Subtotal.Equal(dec(500)))
	assert.True(t, resp.Total.Equal(dec(500)))
}

func TestCart_AddValida(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 3})

	_, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Add(dto.AddCartItemRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, uc.Get(nil).Items, "un alta rechazada no deja renglones")
}

func TestCart_PrecioCongeladoAlAgregar(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	productUC := usecase.NewProductUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10})

	_, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 1})
	require.NoError(t, err)

	// Subir el precio del catálogo no toca el renglón ya agregado
	_, err = productUC.Upsert(pid, dto.ProductRequest{Description: "Pan", SalePrice: dec(180), Stock: 10})
	require.NoError(t, err)

	cart := uc.Get(nil)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].UnitPrice.Equal(dec(100)))
	assert.True(t, cart.Total.Equal(dec(100)))
}

func TestCart_VueltoPrevisto(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10})

	_, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 3})
	require.NoError(t, err)

	// Sin monto entregado no hay vuelto previsto
	cart := uc.Get(nil)
	assert.Nil(t, cart.ChangeDue)

	// Con monto entregado el vuelto se previsualiza sin confirmar nada
	tendered := dec(500)
	cart = uc.Get(&tendered)
	require.NotNil(t, cart.ChangeDue)
	assert.True(t, cart.ChangeDue.Equal(dec(200)))

	// Pago insuficiente: vuelto cero, nunca negativo
	tendered = dec(250)
	cart = uc.Get(&tendered)
	require.NotNil(t, cart.ChangeDue)
	assert.True(t, cart.ChangeDue.IsZero())

	// Consultar el vuelto no descuenta stock ni toca el carrito
	assert.Equal(t, 10, productStock(t, store, pid))
	assert.Len(t, cart.Items, 1)
}

func TestCart_SetQuantityClampeaAUno(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10})

	resp, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 3})
	require.NoError(t, err)
	lineID := resp.Items[0].ID

	resp, err = uc.SetQuantity(lineID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity, "cantidades menores a 1 se fijan en 1")

	resp, err = uc.SetQuantity(lineID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Items[0].Quantity)

	_, err = uc.SetQuantity("no-existe", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_Remove(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewCartUseCase(store)
	pid := seedProduct(t, store, dto.ProductRequest{Description: "Pan", SalePrice: dec(100), Stock: 10})

	resp, err := uc.Add(dto.AddCartItemRequest{ProductID: pid, Quantity: 2})
	require.NoError(t, err)
	lineID := resp.Items[0].ID

	resp, err = uc.Remove(lineID)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())

	resp, err = uc.Remove("no-existe")
	require.NoError(t, err, "sacar un renglón inexistente no es un error")
	assert.Empty(t, resp.Items)
}
