package dto

// ConsultaRequest es el formulario público de contacto. Consentimiento
// con required rechaza false: sin consentimiento no se persiste nada.
type ConsultaRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Mensaje        string `json:"mensaje" validate:"required"`
	Consentimiento bool   `json:"consentimiento" validate:"required"`
}

type ConsultaResponse struct {
	ID string `json:"id"`
}
