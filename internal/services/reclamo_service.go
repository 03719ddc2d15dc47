package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"gorm.io/gorm"

	"reclamos_backend/internal/auth"
	"reclamos_backend/internal/email"
	"reclamos_backend/internal/logger"
	"reclamos_backend/internal/models"
	"reclamos_backend/internal/repositories"
	"reclamos_backend/internal/services/dto"
	"reclamos_backend/pkg/apperrors"
)

const (
	autorCliente = "Cliente"
	autorEstudio = "Estudio"

	slaInicialDias  = 7
	tempPasswordLen = 8
)

type ReclamoService interface {
	// Crear da de alta un reclamo público. identityEmail viene del token
	// opcional; vacío significa anónimo. Devuelve el id del reclamo.
	Crear(ctx context.Context, form *dto.ReclamoForm, files []*multipart.FileHeader, identityEmail string) (string, error)
	Listar(identity *auth.Claims, mine bool, limit int) ([]dto.ReclamoHeader, error)
	Detalle(identity *auth.Claims, id string) (*dto.ReclamoDetalle, error)
	// Actualizar aplica el PATCH del abogado: campos de la allow-list
	// más hito y mensaje opcionales, todo en una transacción.
	Actualizar(id string, patch *dto.ReclamoPatch) error
	AgregarArchivos(ctx context.Context, identity *auth.Claims, id string, files []*multipart.FileHeader) (int, error)
	AgregarMensaje(identity *auth.Claims, id, texto string) error
}

type ReclamoServiceImpl struct {
	db             *gorm.DB
	userRepo       repositories.UserRepository
	reclamoRepo    repositories.ReclamoRepository
	archivoService ArchivoService
	emailProvider  email.Provider
}

func NewReclamoService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	reclamoRepo repositories.ReclamoRepository,
	archivoService ArchivoService,
	emailProvider email.Provider,
) ReclamoService {
	return &ReclamoServiceImpl{
		db:             db,
		userRepo:       userRepo,
		reclamoRepo:    reclamoRepo,
		archivoService: archivoService,
		emailProvider:  emailProvider,
	}
}

// puedeAcceder decide si una identidad puede ver o tocar un reclamo:
// abogado siempre, cliente solo si es el dueño (email sin mayúsculas).
func puedeAcceder(identity *auth.Claims, ownerEmail string) bool {
	if identity.Role == string(models.UserRoleAbogado) {
		return true
	}
	return strings.EqualFold(identity.Email, ownerEmail)
}

func (s *ReclamoServiceImpl) Crear(ctx context.Context, form *dto.ReclamoForm, files []*multipart.FileHeader, identityEmail string) (string, error) {
	ownerEmail := strings.ToLower(form.Email)
	if identityEmail != "" {
		// El token pisa el email del formulario.
		ownerEmail = strings.ToLower(identityEmail)
	}

	// Los bytes van a disco antes de abrir la transacción; si algo
	// falla después queda un huérfano en un storage que de todos modos
	// es efímero.
	archivos, err := s.archivoService.GuardarArchivos(ctx, files)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	var reclamoID string
	var tempPassword string

	err = s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		reclamoRepo := s.reclamoRepo.WithTx(tx)

		_, err := userRepo.FindByEmail(ownerEmail)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrUserNotFound) {
				return err
			}
			// Auto-provisión: cuenta cliente con contraseña temporal.
			tempPassword, err = auth.GenerateTempPassword(tempPasswordLen)
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(tempPassword)
			if err != nil {
				return err
			}
			if err := userRepo.Create(&models.User{
				Email:        ownerEmail,
				Name:         form.Nombre,
				Role:         models.UserRoleCliente,
				PasswordHash: hash,
				Telefono:     form.Telefono,
				Dni:          form.Dni,
			}); err != nil {
				return err
			}
		}

		now := time.Now()
		codigo, err := generarCodigoUnico(reclamoRepo, now)
		if err != nil {
			return err
		}

		reclamo := &models.Reclamo{
			Codigo:     codigo,
			OwnerEmail: ownerEmail,
			Entidad:    form.Entidad,
			Estado:     models.EstadoRecibido,
			Tipo:       models.TipoOrdinario,
			SlaDue:     now.AddDate(0, 0, slaInicialDias),
			Timeline: []models.ReclamoTimeline{
				{Fecha: now, Hito: "Reclamo iniciado por el cliente", Tipo: "ok"},
			},
			Mensajes: []models.ReclamoMensaje{
				{Autor: autorCliente, Texto: form.Descripcion, CreadoEn: now},
			},
			Archivos: archivos,
		}

		if err := reclamoRepo.Create(reclamo); err != nil {
			return err
		}

		reclamoID = reclamo.ID
		return nil
	})
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	s.notificarAlta(ownerEmail, form.Nombre, reclamoID, tempPassword)

	return reclamoID, nil
}

// notificarAlta avisa por correo que el reclamo entró. Best-effort: una
// falla de SMTP no afecta el alta ya confirmada.
func (s *ReclamoServiceImpl) notificarAlta(ownerEmail, nombre, reclamoID, tempPassword string) {
	reclamo, err := s.reclamoRepo.FindByID(reclamoID)
	if err != nil {
		return
	}

	msg := email.ReclamoRecibido(nombre, reclamo.Codigo, tempPassword)
	msg.To = []string{ownerEmail}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.Warn("no se pudo enviar el correo de alta", "error", err, "reclamo", reclamo.Codigo)
	}
}

func (s *ReclamoServiceImpl) Listar(identity *auth.Claims, mine bool, limit int) ([]dto.ReclamoHeader, error) {
	ownerEmail := ""
	if mine || identity.Role != string(models.UserRoleAbogado) {
		ownerEmail = strings.ToLower(identity.Email)
	}

	reclamos, err := s.reclamoRepo.List(ownerEmail, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	headers := make([]dto.ReclamoHeader, 0, len(reclamos))
	for i := range reclamos {
		// El nombre del cliente queda vacío en el listado; se completa
		// en el detalle.
		headers = append(headers, buildHeader(&reclamos[i], ""))
	}
	return headers, nil
}

func (s *ReclamoServiceImpl) Detalle(identity *auth.Claims, id string) (*dto.ReclamoDetalle, error) {
	reclamo, err := s.reclamoRepo.FindByIDFull(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReclamoNotFound) {
			return nil, apperrors.ErrReclamoNoEncontrado
		}
		return nil, apperrors.InternalError(err)
	}

	if !puedeAcceder(identity, reclamo.OwnerEmail) {
		return nil, apperrors.ErrSinPermisos
	}

	nombre := ""
	if owner, err := s.userRepo.FindByEmail(reclamo.OwnerEmail); err == nil {
		nombre = owner.Name
	}

	detalle := &dto.ReclamoDetalle{
		ReclamoHeader: buildHeader(reclamo, nombre),
		Timeline:      make([]dto.TimelineItem, 0, len(reclamo.Timeline)),
		Mensajes:      make([]dto.MensajeItem, 0, len(reclamo.Mensajes)),
		Archivos:      make([]dto.ArchivoItem, 0, len(reclamo.Archivos)),
	}

	for _, t := range reclamo.Timeline {
		detalle.Timeline = append(detalle.Timeline, dto.TimelineItem{
			Fecha: t.Fecha.Format("2006-01-02"),
			Hito:  t.Hito,
			Tipo:  t.Tipo,
		})
	}
	for _, m := range reclamo.Mensajes {
		detalle.Mensajes = append(detalle.Mensajes, dto.MensajeItem{
			De:    m.Autor,
			Texto: m.Texto,
			Fecha: m.CreadoEn.Format("2006-01-02 15:04"),
		})
	}
	for _, a := range reclamo.Archivos {
		detalle.Archivos = append(detalle.Archivos, dto.ArchivoItem{
			ID:           a.ID,
			Filename:     a.Filename,
			OriginalName: a.OriginalName,
			MimeType:     a.MimeType,
			URL:          a.URL,
			Size:         a.Size,
		})
	}

	return detalle, nil
}

func (s *ReclamoServiceImpl) Actualizar(id string, patch *dto.ReclamoPatch) error {
	fields := map[string]interface{}{}
	if patch.Estado != nil {
		fields["estado"] = *patch.Estado
	}
	if patch.Monto != nil {
		fields["monto"] = *patch.Monto
	}
	if patch.Entidad != nil {
		fields["entidad"] = *patch.Entidad
	}
	if patch.Tipo != nil {
		fields["tipo"] = *patch.Tipo
	}
	if patch.SlaDue != nil {
		slaDue, err := parseFecha(*patch.SlaDue)
		if err != nil {
			return apperrors.NewBadRequestError("slaDue inválido")
		}
		fields["sla_due"] = slaDue
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		reclamoRepo := s.reclamoRepo.WithTx(tx)

		// UpdateFields también bumpea updated_at aunque el body venga
		// solo con hito/mensaje.
		if err := reclamoRepo.UpdateFields(id, fields); err != nil {
			return err
		}

		if patch.TimelineItem != nil && patch.TimelineItem.Hito != "" {
			fecha := time.Now()
			if patch.TimelineItem.Fecha != "" {
				if parsed, err := parseFecha(patch.TimelineItem.Fecha); err == nil {
					fecha = parsed
				}
			}
			tipo := patch.TimelineItem.Tipo
			if tipo == "" {
				tipo = "info"
			}
			if err := reclamoRepo.AddTimeline(&models.ReclamoTimeline{
				ReclamoID: id,
				Fecha:     fecha,
				Hito:      patch.TimelineItem.Hito,
				Tipo:      tipo,
			}); err != nil {
				return err
			}
		}

		if patch.Mensaje != nil && patch.Mensaje.Texto != "" {
			if err := reclamoRepo.AddMensaje(&models.ReclamoMensaje{
				ReclamoID: id,
				Autor:     autorEstudio,
				Texto:     patch.Mensaje.Texto,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrReclamoNotFound) {
			return apperrors.ErrReclamoNoEncontrado
		}
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *ReclamoServiceImpl) AgregarArchivos(ctx context.Context, identity *auth.Claims, id string, files []*multipart.FileHeader) (int, error) {
	reclamo, err := s.reclamoRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReclamoNotFound) {
			return 0, apperrors.ErrReclamoNoEncontrado
		}
		return 0, apperrors.InternalError(err)
	}

	if !puedeAcceder(identity, reclamo.OwnerEmail) {
		return 0, apperrors.ErrSinPermisos
	}

	archivos, err := s.archivoService.GuardarArchivos(ctx, files)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	for i := range archivos {
		archivos[i].ReclamoID = id
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		reclamoRepo := s.reclamoRepo.WithTx(tx)
		if err := reclamoRepo.AddArchivos(archivos); err != nil {
			return err
		}
		if len(archivos) > 0 {
			// Misma regla que los mensajes: todo alta de sub-recurso
			// cuenta como movimiento del expediente.
			return reclamoRepo.TouchUpdatedAt(id)
		}
		return nil
	})
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	return len(archivos), nil
}

func (s *ReclamoServiceImpl) AgregarMensaje(identity *auth.Claims, id, texto string) error {
	reclamo, err := s.reclamoRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReclamoNotFound) {
			return apperrors.ErrReclamoNoEncontrado
		}
		return apperrors.InternalError(err)
	}

	if !puedeAcceder(identity, reclamo.OwnerEmail) {
		return apperrors.ErrSinPermisos
	}

	autor := autorCliente
	if identity.Role == string(models.UserRoleAbogado) {
		autor = autorEstudio
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		reclamoRepo := s.reclamoRepo.WithTx(tx)
		if err := reclamoRepo.AddMensaje(&models.ReclamoMensaje{
			ReclamoID: id,
			Autor:     autor,
			Texto:     texto,
		}); err != nil {
			return err
		}
		return reclamoRepo.TouchUpdatedAt(id)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func buildHeader(r *models.Reclamo, nombreCliente string) dto.ReclamoHeader {
	return dto.ReclamoHeader{
		ID:        r.ID,
		Codigo:    r.Codigo,
		Cliente:   dto.ClienteRef{Email: r.OwnerEmail, Nombre: nombreCliente},
		Entidad:   r.Entidad,
		Monto:     r.Monto,
		Estado:    r.Estado,
		Tipo:      r.Tipo,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		SlaDue:    r.SlaDue.Format(time.RFC3339),
	}
}

// parseFecha acepta RFC3339 o fecha corta YYYY-MM-DD.
func parseFecha(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
