package services

import (
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/repositories"
	"reclamos_backend/internal/services/dto"
	"reclamos_backend/pkg/apperrors"
)

type ConsultaService interface {
	Crear(req *dto.ConsultaRequest) (*dto.ConsultaResponse, error)
}

type ConsultaServiceImpl struct {
	consultaRepo repositories.ConsultaRepository
}

func NewConsultaService(consultaRepo repositories.ConsultaRepository) ConsultaService {
	return &ConsultaServiceImpl{consultaRepo: consultaRepo}
}

func (s *ConsultaServiceImpl) Crear(req *dto.ConsultaRequest) (*dto.ConsultaResponse, error) {
	consulta := &models.Consulta{
		Nombre:         req.Nombre,
		Email:          req.Email,
		Mensaje:        req.Mensaje,
		Consentimiento: req.Consentimiento,
	}

	if err := s.consultaRepo.Create(consulta); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ConsultaResponse{ID: consulta.ID}, nil
}
