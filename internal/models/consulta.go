package models

// Consulta es una consulta pública del formulario de contacto.
// No tiene relación con reclamos ni usuarios.
type Consulta struct {
	BaseModel
	Nombre         string `gorm:"not null"`
	Email          string `gorm:"not null;index"`
	Mensaje        string `gorm:"type:text;not null"`
	Consentimiento bool   `gorm:"not null"`
}
