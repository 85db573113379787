package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/moderation"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/slug"
)

// EmpleoUseCase casos de uso de la bolsa de empleo.
type EmpleoUseCase struct {
	repo repository.EmpleoRepository
}

// NewEmpleoUseCase construye el caso de uso.
func NewEmpleoUseCase(repo repository.EmpleoRepository) *EmpleoUseCase {
	return &EmpleoUseCase{repo: repo}
}

// CrearPublico crea una oferta desde el formulario público: nace pendiente
// sin importar el payload. El slug se resuelve con verificación previa y
// sufijo de timestamp en colisión.
func (uc *EmpleoUseCase) CrearPublico(ctx context.Context, in dto.CrearEmpleoRequest) (*dto.EmpleoResponse, error) {
	return uc.crear(ctx, in, moderation.Nuevas())
}

// CrearAdmin crea una oferta desde el panel; puede nacer activa.
func (uc *EmpleoUseCase) CrearAdmin(ctx context.Context, in dto.CrearEmpleoAdminRequest) (*dto.EmpleoResponse, error) {
	return uc.crear(ctx, in.CrearEmpleoRequest, moderation.NuevasAdmin(in.Activo))
}

func (uc *EmpleoUseCase) crear(ctx context.Context, in dto.CrearEmpleoRequest, flags moderation.Flags) (*dto.EmpleoResponse, error) {
	if !entity.CategoriaEmpleoValida(in.Categoria) {
		return nil, domain.ErrInvalidInput
	}
	if in.SalarioMin != nil && in.SalarioMax != nil && in.SalarioMin.GreaterThan(*in.SalarioMax) {
		return nil, domain.ErrInvalidInput
	}
	s, err := slug.Resolver(ctx, in.Titulo, slug.VerificarConTimestamp,
		slug.VerificadorFunc(uc.repo.ExisteSlug))
	if err != nil {
		return nil, err
	}
	empleo := &entity.Empleo{
		ID:          uuid.New().String(),
		Titulo:      in.Titulo,
		Slug:        s,
		Empresa:     in.Empresa,
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		Ubicacion:   in.Ubicacion,
		Whatsapp:    in.Whatsapp,
		SalarioMin:  in.SalarioMin,
		SalarioMax:  in.SalarioMax,
		Activo:      flags.Activo,
		Destacado:   flags.Destacado,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Crear(ctx, empleo); err != nil {
		return nil, err
	}
	return toEmpleoResponse(empleo), nil
}

// Obtener devuelve una oferta por ID (incluye pendientes; el handler decide la visibilidad).
func (uc *EmpleoUseCase) Obtener(ctx context.Context, id string) (*dto.EmpleoResponse, error) {
	empleo, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empleo == nil {
		return nil, nil
	}
	return toEmpleoResponse(empleo), nil
}

// Listar lista ofertas según el filtro; las rutas públicas fijan SoloActivos.
func (uc *EmpleoUseCase) Listar(ctx context.Context, filtro repository.FiltroEmpleos) (*dto.EmpleoListResponse, error) {
	list, err := uc.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpleoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpleoResponse(e))
	}
	return &dto.EmpleoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Actualizar aplica una actualización parcial. El slug no se regenera salvo
// que llegue explícitamente vacío; entonces se deriva del título vigente.
func (uc *EmpleoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarEmpleoRequest) (*dto.EmpleoResponse, error) {
	empleo, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empleo == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		empleo.Titulo = *in.Titulo
	}
	if in.Empresa != nil {
		empleo.Empresa = *in.Empresa
	}
	if in.Descripcion != nil {
		empleo.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		if !entity.CategoriaEmpleoValida(*in.Categoria) {
			return nil, domain.ErrInvalidInput
		}
		empleo.Categoria = *in.Categoria
	}
	if in.Ubicacion != nil {
		empleo.Ubicacion = *in.Ubicacion
	}
	if in.Whatsapp != nil {
		empleo.Whatsapp = *in.Whatsapp
	}
	if in.SalarioMin != nil {
		empleo.SalarioMin = in.SalarioMin
	}
	if in.SalarioMax != nil {
		empleo.SalarioMax = in.SalarioMax
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			s, err := slug.Resolver(ctx, empleo.Titulo, slug.VerificarConTimestamp,
				slug.VerificadorFunc(uc.repo.ExisteSlug))
			if err != nil {
				return nil, err
			}
			empleo.Slug = s
		} else {
			empleo.Slug = *in.Slug
		}
	}
	if in.Activo != nil {
		empleo.Activo = *in.Activo
	}
	if in.Destacado != nil {
		empleo.Destacado = *in.Destacado
	}
	if err := uc.repo.Actualizar(ctx, empleo); err != nil {
		return nil, err
	}
	return toEmpleoResponse(empleo), nil
}

// Eliminar borra definitivamente una oferta.
func (uc *EmpleoUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

func toEmpleoResponse(e *entity.Empleo) *dto.EmpleoResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpleoResponse{
		ID:          e.ID,
		Titulo:      e.Titulo,
		Slug:        e.Slug,
		Empresa:     e.Empresa,
		Descripcion: e.Descripcion,
		Categoria:   e.Categoria,
		Ubicacion:   e.Ubicacion,
		Whatsapp:    e.Whatsapp,
		SalarioMin:  e.SalarioMin,
		SalarioMax:  e.SalarioMax,
		Activo:      e.Activo,
		Destacado:   e.Destacado,
		CreatedAt:   e.CreatedAt,
	}
}
