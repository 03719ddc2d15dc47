package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reclamos_backend/internal/services"
	"reclamos_backend/internal/services/dto"
)

type ConsultaHandler struct {
	*BaseHandler
	consultaService services.ConsultaService
}

func NewConsultaHandler(base *BaseHandler, consultaService services.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{BaseHandler: base, consultaService: consultaService}
}

func (h *ConsultaHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/consultas", h.Crear)
}

func (h *ConsultaHandler) Crear(c *gin.Context) {
	var req dto.ConsultaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.consultaService.Crear(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
