package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/models"
)

// CreateUser inserta un usuario directo en la base, sin pasar por la API.
func (ts *TestServer) CreateUser(t *testing.T, email, password, name string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("no se pudo hashear la contraseña: %v", err)
	}

	user := &models.User{
		Email:        strings.ToLower(email),
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("no se pudo crear el usuario de test: %v", err)
	}
	return user
}

// LoginUser hace login por la API y devuelve el accessToken.
func (ts *TestServer) LoginUser(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login de test falló con %d: %s", res.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("no se pudo parsear la respuesta de login: %v", err)
	}
	if parsed.AccessToken == "" {
		t.Fatal("el login no devolvió accessToken")
	}
	return parsed.AccessToken
}

// CreateAndLoginUser crea el usuario y devuelve el token ya emitido.
func (ts *TestServer) CreateAndLoginUser(t *testing.T, email, password, name string, role models.UserRole) string {
	t.Helper()

	ts.CreateUser(t, email, password, name, role)
	return ts.LoginUser(t, email, password)
}

// CreateReclamo inserta un reclamo mínimo directo en la base.
func (ts *TestServer) CreateReclamo(t *testing.T, ownerEmail, codigo string) *models.Reclamo {
	t.Helper()

	reclamo := &models.Reclamo{
		Codigo:     codigo,
		OwnerEmail: strings.ToLower(ownerEmail),
		Entidad:    "Banco Río",
		Estado:     models.EstadoRecibido,
		Tipo:       models.TipoOrdinario,
		SlaDue:     time.Now().AddDate(0, 0, 7),
	}
	if err := ts.DB.Create(reclamo).Error; err != nil {
		t.Fatalf("no se pudo crear el reclamo de test: %v", err)
	}
	return reclamo
}
