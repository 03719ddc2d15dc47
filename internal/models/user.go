package models

type UserRole string

const (
	UserRoleCliente UserRole = "cliente"
	UserRoleAbogado UserRole = "abogado"
)

// User es la cuenta que inicia sesión. Se crea por seed o de forma
// automática cuando un email desconocido presenta un reclamo.
// El email se guarda siempre en minúsculas; es la clave de negocio.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	Name         string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'cliente'"`
	PasswordHash string   `gorm:"not null"`
	Telefono     string
	Dni          string

	Reclamos []Reclamo `gorm:"foreignKey:OwnerEmail;references:Email"`
}
