package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reclamos_backend/internal/config"
	"reclamos_backend/internal/models"
)

// Connect abre la conexión GORM contra Postgres con el DSN configurado.
// TranslateError convierte los errores del driver (clave duplicada,
// etc.) en los errores estándar de GORM que chequean los repositorios.
func Connect() (*gorm.DB, error) {
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base: %w", err)
	}

	return db, nil
}

// AutoMigrate crea/ajusta el esquema de todos los modelos.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Consulta{},
		&models.Reclamo{},
		&models.ReclamoTimeline{},
		&models.ReclamoMensaje{},
		&models.ReclamoArchivo{},
	)
}
