package handlers

// AppHandlers agrupa los handlers para el registro de rutas.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ConsultaHandler *ConsultaHandler
	ReclamoHandler  *ReclamoHandler
}
