package services

import "reclamos_backend/internal/email"

// ServiceContainer junta los servicios para el wiring de la app.
type ServiceContainer struct {
	AuthService     AuthService
	ConsultaService ConsultaService
	ReclamoService  ReclamoService
	ArchivoService  ArchivoService
	EmailProvider   email.Provider
}
