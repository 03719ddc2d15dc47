package email

// Email es un mensaje saliente.
type Email struct {
	To      []string
	Subject string
	HTML    string
}

// Provider abstrae el envío de correo. Los envíos del flujo de reclamos
// son best-effort: una falla se loguea y no corta el request.
type Provider interface {
	Send(email *Email) error
}

// NoopProvider descarta los correos. Se usa cuando SMTP no está
// configurado (entornos de desarrollo y tests).
type NoopProvider struct{}

func (NoopProvider) Send(email *Email) error { return nil }
