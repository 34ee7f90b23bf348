package docstore

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSlot guarda el documento serializado en una fila de SQLite, clave
// SlotKey. Es el mismo contrato clave→blob que el slot de archivo, con la
// durabilidad de un archivo .db.
type SQLiteSlot struct {
	db *sql.DB
}

// OpenSQLiteSlot abre (o crea) la base en path y prepara la tabla del slot.
func OpenSQLiteSlot(path string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("docstore: abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("docstore: conectar sqlite: %w", err)
	}

	// SQLite admite un solo escritor; una conexión evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("docstore: aplicar pragmas: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS documento (clave TEXT PRIMARY KEY, datos BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("docstore: crear tabla: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

// Read devuelve el blob del slot; fila ausente no es un error.
func (s *SQLiteSlot) Read() ([]byte, bool, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT datos FROM documento WHERE clave = ?`, SlotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Write inserta o sobrescribe la fila del slot.
func (s *SQLiteSlot) Write(raw []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO documento (clave, datos) VALUES (?, ?)
		 ON CONFLICT(clave) DO UPDATE SET datos = excluded.datos`,
		SlotKey, raw,
	)
	return err
}

// Close cierra la conexión a la base.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
