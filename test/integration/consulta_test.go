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

func TestCrearConsulta(t *testing.T) {
	ts := helpers.NewTestServer(t)

	t.Run("consulta completa devuelve 201 con id", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/consultas", "", map[string]interface{}{
			"nombre":         "Pedro Gómez",
			"email":          "pedro@ejemplo.com",
			"mensaje":        "Quiero saber si mi caso aplica.",
			"consentimiento": true,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		var parsed struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &parsed))
		assert.NotEmpty(t, parsed.ID)

		var guardada models.Consulta
		require.NoError(t, ts.DB.First(&guardada, "id = ?", parsed.ID).Error)
		assert.Equal(t, "pedro@ejemplo.com", guardada.Email)
		assert.True(t, guardada.Consentimiento)
	})

	t.Run("sin consentimiento devuelve 400", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/consultas", "", map[string]interface{}{
			"nombre":         "Pedro Gómez",
			"email":          "pedro@ejemplo.com",
			"mensaje":        "Quiero saber si mi caso aplica.",
			"consentimiento": false,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("faltan campos devuelve 400", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/consultas", "", map[string]interface{}{
			"nombre": "Pedro Gómez",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
