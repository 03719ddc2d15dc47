package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/storage"
)

// ArchivoConfig limita qué adjuntos se aceptan.
type ArchivoConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// ArchivoService valida y persiste adjuntos en storage. Igual que el
// multer original, un archivo rechazado se filtra en silencio: el
// request sigue con los archivos que sí pasaron.
type ArchivoService interface {
	GuardarArchivos(ctx context.Context, files []*multipart.FileHeader) ([]models.ReclamoArchivo, error)
}

type ArchivoServiceImpl struct {
	storage storage.Storage
	config  ArchivoConfig
}

func NewArchivoService(st storage.Storage, config ArchivoConfig) ArchivoService {
	return &ArchivoServiceImpl{storage: st, config: config}
}

// GuardarArchivos escribe cada archivo aceptado bajo un nombre único
// (uuid + extensión original en minúsculas) y devuelve los registros
// listos para asociar a un reclamo. ReclamoID lo completa el caller.
func (s *ArchivoServiceImpl) GuardarArchivos(ctx context.Context, files []*multipart.FileHeader) ([]models.ReclamoArchivo, error) {
	var archivos []models.ReclamoArchivo

	for _, fh := range files {
		mimeType := fh.Header.Get("Content-Type")
		if !s.mimePermitido(mimeType) {
			logger.Warn("adjunto rechazado por tipo", "mimetype", mimeType, "nombre", fh.Filename)
			continue
		}
		if fh.Size > s.config.MaxSize {
			logger.Warn("adjunto rechazado por tamaño", "size", fh.Size, "nombre", fh.Filename)
			continue
		}

		filename := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		err = s.storage.Save(ctx, filename, src, mimeType)
		src.Close()
		if err != nil {
			return nil, err
		}

		url, err := s.storage.GetURL(ctx, filename)
		if err != nil {
			return nil, err
		}

		archivos = append(archivos, models.ReclamoArchivo{
			Filename:     filename,
			OriginalName: fh.Filename,
			MimeType:     mimeType,
			URL:          url,
			Size:         fh.Size,
		})
	}

	return archivos, nil
}

func (s *ArchivoServiceImpl) mimePermitido(mimeType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
