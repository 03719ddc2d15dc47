package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstrae dónde viven los bytes de los adjuntos. El resto de la
// aplicación solo maneja referencias (path y URL pública), así el disco
// local se puede reemplazar por un object storage sin tocar los reclamos.
type Storage interface {
	// Save guarda un archivo en el path dado.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get devuelve el contenido del archivo.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete elimina el archivo si existe.
	Delete(ctx context.Context, path string) error

	// Exists indica si el archivo está presente.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL devuelve la URL pública del archivo.
	GetURL(ctx context.Context, path string) (string, error)

	// GetSize devuelve el tamaño en bytes.
	GetSize(ctx context.Context, path string) (int64, error)
}

// Config es la configuración de storage.
type Config struct {
	Type     string // por ahora solo "local"
	BasePath string
	BaseURL  string
}

// NewStorage construye la implementación según la configuración.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("tipo de storage no soportado: %s", cfg.Type)
	}
}
