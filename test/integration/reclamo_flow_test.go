package integration

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reclamos_backend/internal/models"
	"reclamos_backend/internal/services/dto"
	"reclamos_backend/test/helpers"
)

func formReclamo(email string) map[string]string {
	return map[string]string{
		"nombre":      "Carlos Ruiz",
		"dni":         "30.123.456",
		"telefono":    "+54 11 5555-1234",
		"email":       email,
		"entidad":     "Banco Provincia",
		"descripcion": "Me descontaron un seguro que nunca contraté.",
	}
}

func TestAltaPublicaDeReclamo(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, http.MethodPost, "/reclamos", "", formReclamo("carlos@ejemplo.com"), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var parsed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.ID)

	t.Run("se crea la cuenta del cliente", func(t *testing.T) {
		var user models.User
		require.NoError(t, ts.DB.First(&user, "email = ?", "carlos@ejemplo.com").Error)
		assert.Equal(t, models.UserRoleCliente, user.Role)
		assert.Equal(t, "Carlos Ruiz", user.Name)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("el reclamo nace con código, estado y SLA", func(t *testing.T) {
		var reclamo models.Reclamo
		require.NoError(t, ts.DB.First(&reclamo, "id = ?", parsed.ID).Error)
		assert.Regexp(t, regexp.MustCompile(`^PL-\d{4}-\d{4}$`), reclamo.Codigo)
		assert.Equal(t, models.EstadoRecibido, reclamo.Estado)
		assert.Equal(t, models.TipoOrdinario, reclamo.Tipo)
		assert.Equal(t, "carlos@ejemplo.com", reclamo.OwnerEmail)
		assert.False(t, reclamo.SlaDue.IsZero())
	})

	t.Run("nace con un hito y la descripción como primer mensaje", func(t *testing.T) {
		var hitos []models.ReclamoTimeline
		require.NoError(t, ts.DB.Find(&hitos, "reclamo_id = ?", parsed.ID).Error)
		require.Len(t, hitos, 1)
		assert.Equal(t, "Reclamo iniciado por el cliente", hitos[0].Hito)
		assert.Equal(t, "ok", hitos[0].Tipo)

		var mensajes []models.ReclamoMensaje
		require.NoError(t, ts.DB.Find(&mensajes, "reclamo_id = ?", parsed.ID).Error)
		require.Len(t, mensajes, 1)
		assert.Equal(t, "Cliente", mensajes[0].Autor)
		assert.Contains(t, mensajes[0].Texto, "seguro que nunca contraté")
	})

	t.Run("un segundo reclamo reutiliza la cuenta existente", func(t *testing.T) {
		res, body := ts.SendMultipart(t, http.MethodPost, "/reclamos", "", formReclamo("carlos@ejemplo.com"), nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		var count int64
		require.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", "carlos@ejemplo.com").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestAltaDeReclamoAutenticada(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.CreateAndLoginUser(t, "maria@cliente.com", "123456", "María López", models.UserRoleCliente)

	// Con sesión activa el dueño es el del token, no el email del form.
	res, body := ts.SendMultipart(t, http.MethodPost, "/reclamos", token, formReclamo("otro@ejemplo.com"), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var parsed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))

	var reclamo models.Reclamo
	require.NoError(t, ts.DB.First(&reclamo, "id = ?", parsed.ID).Error)
	assert.Equal(t, "maria@cliente.com", reclamo.OwnerEmail)
}

func TestAltaDeReclamoIncompleta(t *testing.T) {
	ts := helpers.NewTestServer(t)

	form := formReclamo("carlos@ejemplo.com")
	delete(form, "entidad")

	res, _ := ts.SendMultipart(t, http.MethodPost, "/reclamos", "", form, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestListarReclamos(t *testing.T) {
	ts := helpers.NewTestServer(t)
	tokenMaria := ts.CreateAndLoginUser(t, "maria@cliente.com", "123456", "María López", models.UserRoleCliente)
	tokenJuan := ts.CreateAndLoginUser(t, "juan@cliente.com", "123456", "Juan Pérez", models.UserRoleCliente)
	tokenAbogada := ts.CreateAndLoginUser(t, "abogada@estudio.com", "secreto", "Dra. Urribarri", models.UserRoleAbogado)

	ts.CreateReclamo(t, "maria@cliente.com", "PL-2026-0001")
	ts.CreateReclamo(t, "maria@cliente.com", "PL-2026-0002")
	ts.CreateReclamo(t, "juan@cliente.com", "PL-2026-0003")

	listar := func(t *testing.T, token, query string) []dto.ReclamoHeader {
		res, body := ts.SendRequest(t, http.MethodGet, "/reclamos"+query, token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)
		var headers []dto.ReclamoHeader
		require.NoError(t, json.Unmarshal([]byte(body), &headers))
		return headers
	}

	t.Run("el cliente solo ve lo suyo", func(t *testing.T) {
		headers := listar(t, tokenMaria, "")
		require.Len(t, headers, 2)
		for _, h := range headers {
			assert.Equal(t, "maria@cliente.com", h.Cliente.Email)
		}
	})

	t.Run("el abogado ve todos", func(t *testing.T) {
		headers := listar(t, tokenAbogada, "")
		assert.Len(t, headers, 3)
	})

	t.Run("mine restringe también al abogado", func(t *testing.T) {
		headers := listar(t, tokenAbogada, "?mine=true")
		assert.Empty(t, headers)
	})

	t.Run("limit recorta el listado", func(t *testing.T) {
		headers := listar(t, tokenAbogada, "?limit=1")
		assert.Len(t, headers, 1)
	})

	t.Run("ordenado por última actividad", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/reclamos/"+idPorCodigo(t, ts, "PL-2026-0001")+"/mensajes", tokenMaria, map[string]string{
			"texto": "¿Alguna novedad?",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)

		headers := listar(t, tokenMaria, "")
		require.Len(t, headers, 2)
		assert.Equal(t, "PL-2026-0001", headers[0].Codigo)
	})

	t.Run("un reclamo ajeno devuelve 403", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/reclamos/"+idPorCodigo(t, ts, "PL-2026-0003"), tokenMaria, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Contains(t, body, "Sin permisos")
	})

	t.Run("el dueño sí accede por id", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/reclamos/"+idPorCodigo(t, ts, "PL-2026-0003"), tokenJuan, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("id inexistente devuelve 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/reclamos/00000000-0000-0000-0000-000000000000", tokenAbogada, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "No encontrado")
	})
}

func TestDetalleDeReclamo(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, http.MethodPost, "/reclamos", "", formReclamo("carlos@ejemplo.com"), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var creado struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &creado))

	tokenAbogada := ts.CreateAndLoginUser(t, "abogada@estudio.com", "secreto", "Dra. Urribarri", models.UserRoleAbogado)

	res, body = ts.SendRequest(t, http.MethodGet, "/reclamos/"+creado.ID, tokenAbogada, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var detalle dto.ReclamoDetalle
	require.NoError(t, json.Unmarshal([]byte(body), &detalle))

	assert.Equal(t, "Carlos Ruiz", detalle.Cliente.Nombre)
	assert.Equal(t, "carlos@ejemplo.com", detalle.Cliente.Email)
	assert.Equal(t, models.EstadoRecibido, detalle.Estado)

	require.Len(t, detalle.Timeline, 1)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), detalle.Timeline[0].Fecha)

	require.Len(t, detalle.Mensajes, 1)
	assert.Equal(t, "Cliente", detalle.Mensajes[0].De)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`), detalle.Mensajes[0].Fecha)

	assert.Empty(t, detalle.Archivos)
}

func idPorCodigo(t *testing.T, ts *helpers.TestServer, codigo string) string {
	t.Helper()
	var reclamo models.Reclamo
	require.NoError(t, ts.DB.First(&reclamo, "codigo = ?", codigo).Error)
	return reclamo.ID
}
