package apperrors

import "net/http"

// Errores de dominio predefinidos. Los mensajes son los que ve el
// cliente, por eso están en castellano.

var ErrCredencialesInvalidas = New(
	CodeInvalidCredentials,
	"auth",
	"Credenciales inválidas",
	http.StatusUnauthorized,
)

var ErrNoAutenticado = New(
	CodeUnauthorized,
	"auth",
	"No autenticado",
	http.StatusUnauthorized,
)

var ErrTokenInvalido = New(
	CodeInvalidToken,
	"auth",
	"Token inválido o expirado",
	http.StatusUnauthorized,
)

var ErrSinPermisos = New(
	CodeForbidden,
	"auth",
	"Sin permisos",
	http.StatusForbidden,
)

var ErrReclamoNoEncontrado = New(
	CodeNotFound,
	"reclamos",
	"No encontrado",
	http.StatusNotFound,
)

// ErrNotFound convierte un error de repositorio (gorm.ErrRecordNotFound)
// en un 404 genérico.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "No encontrado", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "El recurso ya existe", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}
