package docstore

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSlot guarda el documento en un archivo JSON. El filesystem se abstrae
// con afero para poder testear con un fs en memoria.
type FileSlot struct {
	fs   afero.Fs
	path string
}

// NewFileSlot construye el slot sobre el fs dado.
func NewFileSlot(fs afero.Fs, path string) *FileSlot {
	return &FileSlot{fs: fs, path: path}
}

// Read lee el archivo completo; un archivo ausente no es un error.
func (s *FileSlot) Read() ([]byte, bool, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// Write sobrescribe el archivo completo, creando el directorio si hace falta.
func (s *FileSlot) Write(raw []byte) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.fs, s.path, raw, 0o644)
}
