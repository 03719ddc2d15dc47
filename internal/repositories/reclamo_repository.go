package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"reclamos_backend/internal/models"
)

var ErrReclamoNotFound = errors.New("reclamo no encontrado")

type ReclamoRepository interface {
	Create(reclamo *models.Reclamo) error
	FindByID(id string) (*models.Reclamo, error)
	// FindByIDFull trae el reclamo con timeline, mensajes y archivos,
	// ordenados como los consume el detalle.
	FindByIDFull(id string) (*models.Reclamo, error)
	// List devuelve cabeceras ordenadas por updated_at descendente.
	// ownerEmail vacío lista todo; limit <= 0 no trunca.
	List(ownerEmail string, limit int) ([]models.Reclamo, error)
	UpdateFields(id string, fields map[string]interface{}) error
	CodigoExists(codigo string) (bool, error)

	AddTimeline(entry *models.ReclamoTimeline) error
	AddMensaje(mensaje *models.ReclamoMensaje) error
	AddArchivos(archivos []models.ReclamoArchivo) error
	// TouchUpdatedAt registra que el expediente tuvo movimiento.
	TouchUpdatedAt(id string) error

	WithTx(tx *gorm.DB) ReclamoRepository
}

type ReclamoRepositoryImpl struct {
	db *gorm.DB
}

func NewReclamoRepository(db *gorm.DB) ReclamoRepository {
	return &ReclamoRepositoryImpl{db: db}
}

func (r *ReclamoRepositoryImpl) WithTx(tx *gorm.DB) ReclamoRepository {
	return &ReclamoRepositoryImpl{db: tx}
}

func (r *ReclamoRepositoryImpl) Create(reclamo *models.Reclamo) error {
	return r.db.Create(reclamo).Error
}

func (r *ReclamoRepositoryImpl) FindByID(id string) (*models.Reclamo, error) {
	var reclamo models.Reclamo
	err := r.db.First(&reclamo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReclamoNotFound
		}
		return nil, err
	}
	return &reclamo, nil
}

func (r *ReclamoRepositoryImpl) FindByIDFull(id string) (*models.Reclamo, error) {
	var reclamo models.Reclamo
	err := r.db.
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha ASC")
		}).
		Preload("Mensajes", func(db *gorm.DB) *gorm.DB {
			return db.Order("creado_en ASC")
		}).
		Preload("Archivos").
		First(&reclamo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReclamoNotFound
		}
		return nil, err
	}
	return &reclamo, nil
}

func (r *ReclamoRepositoryImpl) List(ownerEmail string, limit int) ([]models.Reclamo, error) {
	query := r.db.Model(&models.Reclamo{}).Order("updated_at DESC")
	if ownerEmail != "" {
		query = query.Where("owner_email = ?", ownerEmail)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reclamos []models.Reclamo
	if err := query.Find(&reclamos).Error; err != nil {
		return nil, err
	}
	return reclamos, nil
}

func (r *ReclamoRepositoryImpl) UpdateFields(id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Reclamo{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReclamoNotFound
	}
	return nil
}

func (r *ReclamoRepositoryImpl) CodigoExists(codigo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reclamo{}).Where("codigo = ?", codigo).Count(&count).Error
	return count > 0, err
}

func (r *ReclamoRepositoryImpl) AddTimeline(entry *models.ReclamoTimeline) error {
	return r.db.Create(entry).Error
}

func (r *ReclamoRepositoryImpl) AddMensaje(mensaje *models.ReclamoMensaje) error {
	return r.db.Create(mensaje).Error
}

func (r *ReclamoRepositoryImpl) AddArchivos(archivos []models.ReclamoArchivo) error {
	if len(archivos) == 0 {
		return nil
	}
	return r.db.Create(&archivos).Error
}

func (r *ReclamoRepositoryImpl) TouchUpdatedAt(id string) error {
	return r.db.Model(&models.Reclamo{}).Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
