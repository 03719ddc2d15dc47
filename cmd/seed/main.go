// Comando seed: carga los usuarios de demo contra la base configurada.
// Es un upsert idempotente, pensado para correrse una sola vez por
// entorno; los handlers de producción nunca pasan por acá.
package main

import (
	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/config"
	"reclamos_backend/internal/database"
	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/repositories"
)

type seedUser struct {
	email    string
	name     string
	role     models.UserRole
	password string
}

var usuarios = []seedUser{
	{"maria@cliente.com", "María López", models.UserRoleCliente, "123456"},
	{"juan@cliente.com", "Juan Pérez", models.UserRoleCliente, "123456"},
	{"abogada@estudio.com", "Dra. Urribarri", models.UserRoleAbogado, "secreto"},
}

func main() {
	config.LoadConfig()
	logger.Init(config.GetConfig().Server.Env)

	db, err := database.Connect()
	if err != nil {
		logger.Fatal("no se pudo conectar a la base", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("no se pudo migrar el esquema", "error", err)
	}

	userRepo := repositories.NewUserRepository(db)
	for _, u := range usuarios {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			logger.Fatal("no se pudo hashear la contraseña", "email", u.email, "error", err)
		}
		if err := userRepo.Upsert(&models.User{
			Email:        u.email,
			Name:         u.name,
			Role:         u.role,
			PasswordHash: hash,
		}); err != nil {
			logger.Fatal("no se pudo crear el usuario", "email", u.email, "error", err)
		}
		logger.Info("usuario de demo asegurado", "email", u.email, "role", u.role)
	}
}
