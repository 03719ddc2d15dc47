package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reclamos_backend/internal/models"
	"reclamos_backend/test/helpers"
)

func TestLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.CreateUser(t, "maria@cliente.com", "123456", "María López", models.UserRoleCliente)

	t.Run("credenciales correctas devuelven token y perfil", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
			"email":    "maria@cliente.com",
			"password": "123456",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var parsed struct {
			AccessToken string `json:"accessToken"`
			User        struct {
				Name  string `json:"name"`
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &parsed))
		assert.NotEmpty(t, parsed.AccessToken)
		assert.Equal(t, "María López", parsed.User.Name)
		assert.Equal(t, "maria@cliente.com", parsed.User.Email)
		assert.Equal(t, "cliente", parsed.User.Role)
	})

	t.Run("el email no distingue mayúsculas", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
			"email":    "MARIA@Cliente.com",
			"password": "123456",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode, body)
	})

	t.Run("contraseña incorrecta devuelve 401", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
			"email":    "maria@cliente.com",
			"password": "equivocada",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Credenciales inválidas")
	})

	t.Run("email desconocido devuelve el mismo 401", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
			"email":    "nadie@ejemplo.com",
			"password": "123456",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Credenciales inválidas")
	})

	t.Run("faltan campos devuelve 400", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
			"email": "maria@cliente.com",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestRutasProtegidas(t *testing.T) {
	ts := helpers.NewTestServer(t)

	t.Run("sin token devuelve 401", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/reclamos", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "No autenticado")
	})

	t.Run("token adulterado devuelve 401", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/reclamos", "no-es-un-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, body, "Token inválido o expirado")
	})
}

func TestRutaInexistente(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Ruta no encontrada")
}

func TestHealth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, body)
}
