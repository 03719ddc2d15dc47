package app

import (
	"fmt"

	"gorm.io/gorm"

	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/config"
	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/repositories"
)

// SeedFirstAbogado asegura que exista al menos una cuenta de abogado.
// Es un upsert idempotente: si el email ya existe no toca nada. Con la
// config vacía solo avisa y sigue; útil en desarrollo, obligatorio
// configurarlo en producción para poder operar el panel.
func SeedFirstAbogado(db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AbogadoEmail == "" || cfg.Seed.AbogadoPassword == "" {
		logger.Warn("FIRST_ABOGADO_EMAIL/PASSWORD sin configurar; no se crea abogado inicial")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Seed.AbogadoPassword)
	if err != nil {
		return fmt.Errorf("no se pudo hashear la contraseña del abogado inicial: %w", err)
	}

	name := cfg.Seed.AbogadoName
	if name == "" {
		name = "Estudio"
	}

	userRepo := repositories.NewUserRepository(db)
	if err := userRepo.Upsert(&models.User{
		Email:        cfg.Seed.AbogadoEmail,
		Name:         name,
		Role:         models.UserRoleAbogado,
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("no se pudo crear el abogado inicial: %w", err)
	}

	logger.Info("abogado inicial asegurado", "email", cfg.Seed.AbogadoEmail)
	return nil
}
