package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/validator"
	"reclamos_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON decodifica el body JSON y lo valida. Si falla
// responde el 400 y devuelve false: el handler solo tiene que cortar.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.FromContext(ctx).Warn("body inválido", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Datos incompletos"))
		return false
	}

	return h.validate(c, obj)
}

// BindAndValidateForm hace lo mismo para formularios multipart.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.FromContext(ctx).Warn("formulario inválido", "error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Faltan campos obligatorios"))
		return false
	}

	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	ctx := c.Request.Context()
	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.FromContext(ctx).Warn("validación fallida", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	} else {
		logger.FromContext(ctx).Error("error interno del validador", "error", err)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

// HandleServiceError traduce errores de servicio a la respuesta HTTP.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// ParseQueryInt lee un query param numérico con default.
func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
