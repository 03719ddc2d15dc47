package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse es el envelope de error de toda la API.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError responde un error al cliente. Cualquier error que no sea
// *AppError se trata como 500 y nunca expone la causa en el body.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error(), "path", c.Request.URL.Path)
		// Un 500 nunca lleva la causa real al cliente.
		appErr = New(appErr.Code, appErr.Domain, "Error interno", appErr.HTTPCode)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
