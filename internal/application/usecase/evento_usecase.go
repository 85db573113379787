package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/moderation"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/slug"
)

// EventoUseCase casos de uso del calendario de eventos.
type EventoUseCase struct {
	repo repository.EventoRepository
}

// NewEventoUseCase construye el caso de uso.
func NewEventoUseCase(repo repository.EventoRepository) *EventoUseCase {
	return &EventoUseCase{repo: repo}
}

// CrearPublico crea un evento desde el formulario público: siempre pendiente.
// Dos títulos idénticos nunca producen el mismo slug: la colisión se resuelve
// con sufijo de timestamp.
func (uc *EventoUseCase) CrearPublico(ctx context.Context, in dto.CrearEventoRequest) (*dto.EventoResponse, error) {
	return uc.crear(ctx, in, moderation.Nuevas())
}

// CrearAdmin crea un evento desde el panel; puede nacer activo.
func (uc *EventoUseCase) CrearAdmin(ctx context.Context, in dto.CrearEventoAdminRequest) (*dto.EventoResponse, error) {
	return uc.crear(ctx, in.CrearEventoRequest, moderation.NuevasAdmin(in.Activo))
}

func (uc *EventoUseCase) crear(ctx context.Context, in dto.CrearEventoRequest, flags moderation.Flags) (*dto.EventoResponse, error) {
	s, err := slug.Resolver(ctx, in.Titulo, slug.VerificarConTimestamp,
		slug.VerificadorFunc(uc.repo.ExisteSlug))
	if err != nil {
		return nil, err
	}
	evento := &entity.Evento{
		ID:          uuid.New().String(),
		Titulo:      in.Titulo,
		Slug:        s,
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		Lugar:       in.Lugar,
		Fecha:       in.Fecha,
		ImagenURL:   in.ImagenURL,
		Whatsapp:    in.Whatsapp,
		Activo:      flags.Activo,
		Destacado:   flags.Destacado,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Crear(ctx, evento); err != nil {
		return nil, err
	}
	return toEventoResponse(evento), nil
}

// Obtener devuelve un evento por ID.
func (uc *EventoUseCase) Obtener(ctx context.Context, id string) (*dto.EventoResponse, error) {
	evento, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, nil
	}
	return toEventoResponse(evento), nil
}

// Listar lista eventos según el filtro.
func (uc *EventoUseCase) Listar(ctx context.Context, filtro repository.FiltroEventos) (*dto.EventoListResponse, error) {
	list, err := uc.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EventoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventoResponse(e))
	}
	return &dto.EventoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Actualizar aplica una actualización parcial; el slug solo se regenera si
// llega explícitamente vacío.
func (uc *EventoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarEventoRequest) (*dto.EventoResponse, error) {
	evento, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if evento == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		evento.Titulo = *in.Titulo
	}
	if in.Descripcion != nil {
		evento.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		evento.Categoria = *in.Categoria
	}
	if in.Lugar != nil {
		evento.Lugar = *in.Lugar
	}
	if in.Fecha != nil {
		evento.Fecha = *in.Fecha
	}
	if in.ImagenURL != nil {
		evento.ImagenURL = *in.ImagenURL
	}
	if in.Whatsapp != nil {
		evento.Whatsapp = *in.Whatsapp
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			s, err := slug.Resolver(ctx, evento.Titulo, slug.VerificarConTimestamp,
				slug.VerificadorFunc(uc.repo.ExisteSlug))
			if err != nil {
				return nil, err
			}
			evento.Slug = s
		} else {
			evento.Slug = *in.Slug
		}
	}
	if in.Activo != nil {
		evento.Activo = *in.Activo
	}
	if in.Destacado != nil {
		evento.Destacado = *in.Destacado
	}
	if err := uc.repo.Actualizar(ctx, evento); err != nil {
		return nil, err
	}
	return toEventoResponse(evento), nil
}

// Eliminar borra definitivamente un evento.
func (uc *EventoUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

func toEventoResponse(e *entity.Evento) *dto.EventoResponse {
	if e == nil {
		return nil
	}
	return &dto.EventoResponse{
		ID:          e.ID,
		Titulo:      e.Titulo,
		Slug:        e.Slug,
		Descripcion: e.Descripcion,
		Categoria:   e.Categoria,
		Lugar:       e.Lugar,
		Fecha:       e.Fecha,
		ImagenURL:   e.ImagenURL,
		Whatsapp:    e.Whatsapp,
		Activo:      e.Activo,
		Destacado:   e.Destacado,
		CreatedAt:   e.CreatedAt,
	}
}
