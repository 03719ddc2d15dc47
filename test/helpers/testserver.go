package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"reclamos_backend/internal/app"
	"reclamos_backend/internal/config"
	"reclamos_backend/internal/database"
)

// TestServer levanta la API completa contra una base sqlite en memoria
// y un directorio de uploads temporal. Cada test tiene su mundo propio.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := testConfig(t)
	config.AppConfig = cfg

	// Base en memoria con nombre único para que las conexiones del pool
	// de GORM compartan el mismo esquema sin pisarse entre tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("no se pudo abrir la base de test: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("no se pudo migrar el esquema de test: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	ts := &TestServer{Server: server, DB: db, Config: cfg}
	t.Cleanup(ts.Close)
	return ts
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 120
	cfg.RateLimit.Requests = 10000
	cfg.RateLimit.WindowS = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png"}
	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest manda un request JSON y devuelve la respuesta y su body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("no se pudo serializar el body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("no se pudo crear el request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// MultipartFile es un adjunto para SendMultipart.
type MultipartFile struct {
	FieldName string
	FileName  string
	MimeType  string
	Content   []byte
}

// SendMultipart manda un formulario multipart con campos y archivos,
// como hace el front con el alta de reclamos.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files []MultipartFile) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("no se pudo escribir el campo %s: %v", key, err)
		}
	}

	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
		header.Set("Content-Type", f.MimeType)

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("no se pudo crear la parte del archivo: %v", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("no se pudo escribir el archivo: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("no se pudo cerrar el multipart: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("no se pudo crear el request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("no se pudo enviar el request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("no se pudo leer la respuesta: %v", err)
	}

	return res, string(resBody)
}
