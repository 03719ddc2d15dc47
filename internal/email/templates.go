package email

import "fmt"

// ReclamoRecibido arma el correo que confirma el alta de un reclamo.
// Si la cuenta fue auto-provisionada incluye la contraseña temporal.
func ReclamoRecibido(nombre, codigo, tempPassword string) *Email {
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Recibimos tu reclamo <strong>%s</strong>. "+
			"Podés seguir su estado desde el portal.</p>", nombre, codigo)

	if tempPassword != "" {
		body += fmt.Sprintf(
			"<p>Creamos una cuenta con tu email. Tu contraseña temporal es "+
				"<strong>%s</strong>; cambiala al ingresar.</p>", tempPassword)
	}

	return &Email{
		Subject: fmt.Sprintf("Reclamo %s recibido", codigo),
		HTML:    body,
	}
}
