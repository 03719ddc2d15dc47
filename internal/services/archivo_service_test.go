package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reclamos_backend/internal/storage"
)

func fileHeaders(t *testing.T, files map[string]struct {
	mime    string
	content string
}) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="archivos"; filename=%q`, name))
		header.Set("Content-Type", f.mime)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["archivos"]
}

func newArchivoServiceForTest(t *testing.T, maxSize int64) ArchivoService {
	t.Helper()
	st, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return NewArchivoService(st, ArchivoConfig{
		MaxSize:      maxSize,
		AllowedTypes: []string{"application/pdf", "image/jpeg", "image/png"},
	})
}

func TestGuardarArchivos(t *testing.T) {
	svc := newArchivoServiceForTest(t, 1024)

	headers := fileHeaders(t, map[string]struct {
		mime    string
		content string
	}{
		"Resumen.PDF": {"application/pdf", "%PDF-1.4 ok"},
		"malware.exe": {"application/octet-stream", "MZ"},
	})

	archivos, err := svc.GuardarArchivos(context.Background(), headers)
	require.NoError(t, err)
	require.Len(t, archivos, 1)

	a := archivos[0]
	assert.Equal(t, "Resumen.PDF", a.OriginalName)
	assert.Equal(t, "application/pdf", a.MimeType)
	assert.True(t, strings.HasSuffix(a.Filename, ".pdf"), "extensión en minúsculas: %s", a.Filename)
	assert.Equal(t, "/uploads/"+a.Filename, a.URL)
	assert.EqualValues(t, len("%PDF-1.4 ok"), a.Size)
	assert.Empty(t, a.ReclamoID)
}

func TestGuardarArchivosRechazaGrandes(t *testing.T) {
	svc := newArchivoServiceForTest(t, 4)

	headers := fileHeaders(t, map[string]struct {
		mime    string
		content string
	}{
		"grande.pdf": {"application/pdf", "contenido que excede el límite"},
	})

	archivos, err := svc.GuardarArchivos(context.Background(), headers)
	require.NoError(t, err)
	assert.Empty(t, archivos)
}
