// Package storage implementa el almacenamiento local de imágenes de pantalones.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/confeccion-api/internal/application/production"
)

var _ production.ImagenStore = (*LocalImagenStore)(nil)

// LocalImagenStore guarda imágenes en un directorio del disco local.
type LocalImagenStore struct {
	dir string
}

// NewLocalImagenStore construye el store sobre el directorio dado.
func NewLocalImagenStore(dir string) *LocalImagenStore {
	return &LocalImagenStore{dir: dir}
}

// Eliminar borra el archivo referenciado. Una referencia inexistente no es error;
// filepath.Base evita escapar del directorio con rutas relativas.
func (s *LocalImagenStore) Eliminar(ref string) error {
	if ref == "" {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(ref))
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}
