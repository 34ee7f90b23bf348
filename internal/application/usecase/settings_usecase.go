package usecase

import (
	"strings"

	"github.com/mialmacen/pos-api/internal/application/dto"
	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// SettingsUseCase configuración del comercio: nombre y cajeros. Los cajeros
// son un conjunto ordenado: se conserva el orden de alta y no hay duplicados.
type SettingsUseCase struct {
	store *docstore.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *docstore.Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get() *dto.SettingsResponse {
	var resp *dto.SettingsResponse
	uc.store.View(func(doc *entity.Document) {
		resp = toSettingsResponse(doc.Settings)
	})
	return resp
}

// UpdateStoreName cambia el nombre del comercio; vacío vuelve al default.
func (uc *SettingsUseCase) UpdateStoreName(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	name := strings.TrimSpace(in.StoreName)
	if name == "" {
		name = entity.DefaultStoreName
	}
	var resp *dto.SettingsResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		doc.Settings.StoreName = name
		resp = toSettingsResponse(doc.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AddCashier registra un cajero al final de la lista. Rechaza vacíos y
// duplicados.
func (uc *SettingsUseCase) AddCashier(in dto.AddCashierRequest) (*dto.SettingsResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.SettingsResponse
	err := uc.store.Mutate(func(doc *entity.Document) error {
		for _, c := range doc.Settings.Cashiers {
			if c == name {
				return domain.ErrDuplicate
			}
		}
		doc.Settings.Cashiers = append(doc.Settings.Cashiers, name)
		resp = toSettingsResponse(doc.Settings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func toSettingsResponse(s entity.Settings) *dto.SettingsResponse {
	cashiers := make([]string, len(s.Cashiers))
	copy(cashiers, s.Cashiers)
	return &dto.SettingsResponse{StoreName: s.StoreName, Cashiers: cashiers}
}
