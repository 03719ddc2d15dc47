package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/models"
	"reclamos_backend/pkg/apperrors"
)

const claimsKey = "claims"

// AuthMiddleware exige un bearer token válido y deja los claims en el
// contexto del request.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.ErrorResponse{Error: apperrors.ErrNoAutenticado})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.ErrorResponse{Error: apperrors.ErrTokenInvalido})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware intenta decodificar el bearer si está; ante
// cualquier falla el request sigue como anónimo. Lo usa el alta pública
// de reclamos para asociar el expediente al usuario logueado.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := auth.ParseToken(tokenStr); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles corta con 403 si el rol autenticado no está en la lista.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[string]bool)
	for _, r := range roles {
		roleSet[string(r)] = true
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !roleSet[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apperrors.ErrorResponse{Error: apperrors.ErrSinPermisos})
			return
		}
		c.Next()
	}
}

// GetClaims devuelve los claims del request o nil si no hay identidad.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
