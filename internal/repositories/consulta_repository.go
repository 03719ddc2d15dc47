package repositories

import (
	"gorm.io/gorm"

	"reclamos_backend/internal/models"
)

type ConsultaRepository interface {
	Create(consulta *models.Consulta) error
}

type ConsultaRepositoryImpl struct {
	db *gorm.DB
}

func NewConsultaRepository(db *gorm.DB) ConsultaRepository {
	return &ConsultaRepositoryImpl{db: db}
}

func (r *ConsultaRepositoryImpl) Create(consulta *models.Consulta) error {
	return r.db.Create(consulta).Error
}
