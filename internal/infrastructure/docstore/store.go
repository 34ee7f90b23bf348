// Package docstore implementa la persistencia del agregado completo: un solo
// documento JSON (productos, clientes, ventas, settings, carrito) guardado en
// un slot durable. Cada mutación escribe el documento entero; no hay escrituras
// parciales ni versionado.
package docstore

import (
	"encoding/json"
	"sync"

	"github.com/mialmacen/pos-api/internal/domain/entity"
	"github.com/mialmacen/pos-api/pkg/logger"
)

// SlotKey identifica el slot dentro del backend (misma clave que usaba el
// almacenamiento original).
const SlotKey = "posDataV3"

// Slot es el destino durable del documento serializado.
type Slot interface {
	// Read devuelve el contenido crudo del slot y si existe.
	Read() (raw []byte, exists bool, err error)
	// Write sobrescribe el slot completo.
	Write(raw []byte) error
}

// Store es el dueño único del documento en memoria. Toda lectura y mutación
// pasa por acá; las mutaciones terminan con una escritura completa al slot.
// El mutex serializa el acceso: el diseño es de un solo escritor aunque el
// servidor HTTP atienda requests en paralelo.
type Store struct {
	mu   sync.Mutex
	slot Slot
	doc  *entity.Document
	log  *logger.Logger
}

// Open carga el documento desde el slot. Si el slot no existe o no se puede
// parsear, se registra el error y se continúa con un documento por defecto:
// un arranque nunca falla por datos corruptos.
func Open(slot Slot, log *logger.Logger) (*Store, error) {
	s := &Store{slot: slot, log: log}

	raw, exists, err := slot.Read()
	if err != nil {
		return nil, err
	}
	if !exists {
		s.doc = entity.NewDocument()
		return s, nil
	}

	doc := &entity.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		log.Error().Err(err).Msg("documento persistido ilegible, se usa el documento por defecto")
		s.doc = entity.NewDocument()
		return s, nil
	}
	doc.Normalize()
	s.doc = doc
	return s, nil
}

// View ejecuta fn con acceso de sólo lectura al documento.
func (s *Store) View(fn func(doc *entity.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.doc)
}

// Mutate ejecuta fn sobre el documento y, si no falla, persiste el agregado
// completo. fn debe validar antes de mutar: si devuelve error no debe haber
// tocado el documento (toda operación es todo-o-nada).
func (s *Store) Mutate(fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.doc); err != nil {
		return err
	}
	return s.save()
}

// Replace reemplaza el documento completo (importación de backup) y persiste.
func (s *Store) Replace(doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Normalize()
	s.doc = doc
	return s.save()
}

// Export devuelve el documento serializado con sangría (backup).
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.doc, "", "  ")
}

func (s *Store) save() error {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}
	return s.slot.Write(raw)
}
