package dto

// ReclamoForm es el alta pública de reclamo (multipart, junto a los
// archivos adjuntos).
type ReclamoForm struct {
	Nombre         string `form:"nombre" validate:"required"`
	Dni            string `form:"dni" validate:"required,dni"`
	Telefono       string `form:"telefono" validate:"required,telefono"`
	Email          string `form:"email" validate:"required,email"`
	Entidad        string `form:"entidad" validate:"required"`
	FechaIncidente string `form:"fechaIncidente"`
	Descripcion    string `form:"descripcion" validate:"required"`
}

type ClienteRef struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// ReclamoHeader es la fila liviana del listado: sin timeline, mensajes
// ni archivos. El nombre del cliente se completa recién en el detalle.
type ReclamoHeader struct {
	ID        string     `json:"id"`
	Codigo    string     `json:"codigo"`
	Cliente   ClienteRef `json:"cliente"`
	Entidad   string     `json:"entidad"`
	Monto     *float64   `json:"monto"`
	Estado    string     `json:"estado"`
	Tipo      string     `json:"tipo"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
	SlaDue    string     `json:"slaDue"`
}

type TimelineItem struct {
	Fecha string `json:"fecha"` // YYYY-MM-DD
	Hito  string `json:"hito"`
	Tipo  string `json:"tipo"`
}

type MensajeItem struct {
	De    string `json:"de"`
	Texto string `json:"texto"`
	Fecha string `json:"fecha"` // YYYY-MM-DD HH:mm
}

type ArchivoItem struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

type ReclamoDetalle struct {
	ReclamoHeader
	Timeline []TimelineItem `json:"timeline"`
	Mensajes []MensajeItem  `json:"mensajes"`
	Archivos []ArchivoItem  `json:"archivos"`
}

// TimelineItemInput y MensajeInput son los agregados opcionales del
// PATCH del abogado.
type TimelineItemInput struct {
	Fecha string `json:"fecha"`
	Hito  string `json:"hito"`
	Tipo  string `json:"tipo"`
}

type MensajeInput struct {
	Texto string `json:"texto"`
}

// ReclamoPatch actualiza solo campos de la allow-list; punteros nil
// significan "no tocar". Cualquier otro campo del body se ignora.
type ReclamoPatch struct {
	Estado       *string            `json:"estado"`
	Monto        *float64           `json:"monto"`
	Entidad      *string            `json:"entidad"`
	Tipo         *string            `json:"tipo"`
	SlaDue       *string            `json:"slaDue"`
	TimelineItem *TimelineItemInput `json:"timelineItem"`
	Mensaje      *MensajeInput      `json:"mensaje"`
}

type MensajeRequest struct {
	Texto string `json:"texto" validate:"required"`
}
