package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados conocidos de un reclamo. El campo es texto libre a propósito:
// el estudio ajusta las etiquetas sin migraciones.
const (
	EstadoRecibido         = "Recibido"
	EstadoEnTramite        = "En trámite"
	EstadoEsperandoEntidad = "Esperando entidad"
	EstadoParaFirmar       = "Para firmar demanda"
)

const (
	TipoOrdinario = "Ordinario"
	TipoCautelar  = "Cautelar"
)

// Reclamo es el expediente de un cliente contra una entidad.
// OwnerEmail referencia User.Email (siempre en minúsculas).
type Reclamo struct {
	BaseModel
	Codigo     string `gorm:"uniqueIndex;not null"`
	OwnerEmail string `gorm:"index;not null"`
	Entidad    string `gorm:"not null"`
	Monto      *float64
	Estado     string `gorm:"not null;default:'Recibido'"`
	Tipo       string `gorm:"not null;default:'Ordinario'"`
	SlaDue     time.Time

	Timeline []ReclamoTimeline `gorm:"foreignKey:ReclamoID;constraint:OnDelete:CASCADE"`
	Mensajes []ReclamoMensaje  `gorm:"foreignKey:ReclamoID;constraint:OnDelete:CASCADE"`
	Archivos []ReclamoArchivo  `gorm:"foreignKey:ReclamoID;constraint:OnDelete:CASCADE"`
}

// ReclamoTimeline es un hito fechado del expediente. Solo se agrega,
// nunca se edita. Tipo: ok | warn | info.
type ReclamoTimeline struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ReclamoID string    `gorm:"index;not null"`
	Fecha     time.Time `gorm:"not null"`
	Hito      string    `gorm:"not null"`
	Tipo      string    `gorm:"not null;default:'info'"`
}

func (t *ReclamoTimeline) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ReclamoMensaje es un mensaje del hilo cliente/estudio.
type ReclamoMensaje struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ReclamoID string    `gorm:"index;not null"`
	Autor     string    `gorm:"not null"` // "Cliente" | "Estudio"
	Texto     string    `gorm:"type:text;not null"`
	CreadoEn  time.Time `gorm:"not null"`
}

func (m *ReclamoMensaje) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreadoEn.IsZero() {
		m.CreadoEn = time.Now()
	}
	return nil
}

// ReclamoArchivo es el registro de un adjunto ya persistido en storage.
type ReclamoArchivo struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	ReclamoID    string    `gorm:"index;not null"`
	Filename     string    `gorm:"not null"`
	OriginalName string    `gorm:"column:original_name"`
	MimeType     string
	URL          string
	Size         int64
	CreatedAt    time.Time
}

func (a *ReclamoArchivo) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
