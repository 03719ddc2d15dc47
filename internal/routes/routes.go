package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reclamos_backend/internal/handlers"
	"reclamos_backend/pkg/apperrors"
)

// RegisterRoutes registra todas las rutas HTTP de la API.
// uploadsDir se sirve estático bajo /uploads, con los nombres únicos
// que genera el intake de archivos.
func RegisterRoutes(r *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.Static("/uploads", uploadsDir)

	appHandlers.AuthHandler.RegisterRoutes(r)
	appHandlers.ConsultaHandler.RegisterRoutes(r)
	appHandlers.ReclamoHandler.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apperrors.ErrorResponse{
			Error: apperrors.NewNotFoundError("Ruta no encontrada"),
		})
	})
}
