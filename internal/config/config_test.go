package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "dev-secret", cfg.JWT.Secret)
	assert.Equal(t, 120, cfg.JWT.TTL)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSize)
	assert.Equal(t, []string{"application/pdf", "image/jpeg", "image/png"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "./uploads", cfg.Storage.BasePath)
}

func TestApplyDefaultsNoPisaValores(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.JWT.Secret = "productivo"
	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "productivo", cfg.JWT.Secret)
}

func TestSplitOrigins(t *testing.T) {
	casos := []struct {
		raw      string
		esperado []string
	}{
		{"", nil},
		{"https://app.ejemplo.com", []string{"https://app.ejemplo.com"}},
		{"https://a.com/, https://b.com", []string{"https://a.com", "https://b.com"}},
		{" , https://a.com ,, ", []string{"https://a.com"}},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, splitOrigins(c.raw), "raw: %q", c.raw)
	}
}
