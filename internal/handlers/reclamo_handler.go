package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"reclamos_backend/internal/middleware"
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/services"
	"reclamos_backend/internal/services/dto"
	"reclamos_backend/pkg/apperrors"
)

const archivosFormField = "archivos"

type ReclamoHandler struct {
	*BaseHandler
	reclamoService services.ReclamoService
}

func NewReclamoHandler(base *BaseHandler, reclamoService services.ReclamoService) *ReclamoHandler {
	return &ReclamoHandler{BaseHandler: base, reclamoService: reclamoService}
}

func (h *ReclamoHandler) RegisterRoutes(r *gin.Engine) {
	// El alta es pública; el token, si viene, solo asocia el dueño.
	r.POST("/reclamos", middleware.OptionalAuthMiddleware(), h.Crear)

	reclamos := r.Group("/reclamos")
	reclamos.Use(middleware.AuthMiddleware())
	{
		reclamos.GET("", h.Listar)
		reclamos.GET("/:id", h.Detalle)
		reclamos.PATCH("/:id", middleware.RequireRoles(models.UserRoleAbogado), h.Actualizar)
		reclamos.POST("/:id/archivos", h.AgregarArchivos)
		reclamos.POST("/:id/mensajes", h.AgregarMensaje)
	}
}

func (h *ReclamoHandler) Crear(c *gin.Context) {
	var form dto.ReclamoForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	identityEmail := ""
	if claims := middleware.GetClaims(c); claims != nil {
		identityEmail = claims.Email
	}

	id, err := h.reclamoService.Crear(c.Request.Context(), &form, formFiles(c), identityEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ReclamoHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)

	mine := c.Query("mine") == "true"
	limit := ParseQueryInt(c, "limit", 0)

	headers, err := h.reclamoService.Listar(claims, mine, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, headers)
}

func (h *ReclamoHandler) Detalle(c *gin.Context) {
	claims := middleware.GetClaims(c)

	detalle, err := h.reclamoService.Detalle(claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detalle)
}

func (h *ReclamoHandler) Actualizar(c *gin.Context) {
	var patch dto.ReclamoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Datos incompletos"))
		return
	}

	if err := h.reclamoService.Actualizar(c.Param("id"), &patch); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ReclamoHandler) AgregarArchivos(c *gin.Context) {
	claims := middleware.GetClaims(c)

	count, err := h.reclamoService.AgregarArchivos(c.Request.Context(), claims, c.Param("id"), formFiles(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"count": count})
}

func (h *ReclamoHandler) AgregarMensaje(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req dto.MensajeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reclamoService.AgregarMensaje(claims, c.Param("id"), req.Texto); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// formFiles junta los adjuntos del multipart. Sin multipart o sin
// archivos devuelve nil, que los servicios tratan como lista vacía.
func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[archivosFormField]
}
