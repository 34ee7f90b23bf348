package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mialmacen/pos-api/internal/domain"
	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/internal/infrastructure/docstore"
)

// BackupUseCase exportación e importación del documento completo.
type BackupUseCase struct {
	store *docstore.Store
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(store *docstore.Store) *BackupUseCase {
	return &BackupUseCase{store: store}
}

// Export serializa el documento completo con sangría (backup descargable).
func (uc *BackupUseCase) Export() ([]byte, error) {
	return uc.store.Export()
}

// Import valida y reemplaza el documento completo. El archivo debe traer
// productos, clientes y ventas como arreglos; si la validación falla el
// documento en memoria queda intacto. Tras importar se rederivan los
// defaults de settings que falten y se garantiza el mostrador.
func (uc *BackupUseCase) Import(raw []byte) error {
	var probe struct {
		Products  json.RawMessage `json:"productos"`
		Customers json.RawMessage `json:"clientes"`
		Sales     json.RawMessage `json:"ventas"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	for name, section := range map[string]json.RawMessage{
		"productos": probe.Products,
		"clientes":  probe.Customers,
		"ventas":    probe.Sales,
	} {
		if !isJSONArray(section) {
			return fmt.Errorf("%w: falta el arreglo %q", domain.ErrInvalidDocument, name)
		}
	}

	doc := &entity.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return uc.store.Replace(doc)
}

// Reset descarta todos los datos y persiste un documento por defecto.
func (uc *BackupUseCase) Reset() error {
	return uc.store.Replace(entity.NewDocument())
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
