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

// NegocioUseCase casos de uso del directorio de profesionales y negocios.
type NegocioUseCase struct {
	repo    repository.NegocioRepository
	resenas repository.ResenaRepository
	tx      TxRunner
}

// NewNegocioUseCase construye el caso de uso.
func NewNegocioUseCase(repo repository.NegocioRepository, resenas repository.ResenaRepository, tx TxRunner) *NegocioUseCase {
	return &NegocioUseCase{repo: repo, resenas: resenas, tx: tx}
}

// Crear da de alta una ficha desde el formulario público: siempre pendiente.
// El slug lleva siempre sufijo base36 del timestamp, sin consulta previa.
func (uc *NegocioUseCase) Crear(ctx context.Context, in dto.CrearNegocioRequest) (*dto.NegocioResponse, error) {
	tipo := entity.TipoNegocio(in.Tipo)
	if !tipo.Valido() {
		return nil, domain.ErrInvalidInput
	}
	s, err := slug.Resolver(ctx, in.Nombre, slug.SufijoBase36, nil)
	if err != nil {
		return nil, err
	}
	flags := moderation.Nuevas()
	negocio := &entity.Negocio{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Slug:        s,
		Tipo:        tipo,
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
		Whatsapp:    in.Whatsapp,
		Direccion:   in.Direccion,
		ImagenURL:   in.ImagenURL,
		Activo:      flags.Activo,
		Destacado:   flags.Destacado,
		Verificado:  flags.Verificado,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Crear(ctx, negocio); err != nil {
		return nil, err
	}
	return uc.conAgregado(ctx, negocio)
}

// Obtener devuelve una ficha por ID con su agregado de reseñas.
func (uc *NegocioUseCase) Obtener(ctx context.Context, id string) (*dto.NegocioResponse, error) {
	negocio, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, nil
	}
	return uc.conAgregado(ctx, negocio)
}

// Listar lista fichas con su rating, ordenadas por destacado y promedio.
func (uc *NegocioUseCase) Listar(ctx context.Context, filtro repository.FiltroNegocios) (*dto.NegocioListResponse, error) {
	list, err := uc.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NegocioResponse, 0, len(list))
	for _, n := range list {
		resp := toNegocioResponse(&n.Negocio)
		resp.TotalResenas = n.Total
		if n.Promedio != nil && n.Total > 0 {
			p := n.Promedio.Round(2)
			resp.PuntuacionPromedio = &p
		}
		items = append(items, *resp)
	}
	return &dto.NegocioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Actualizar aplica una actualización parcial, incluidos los toggles de
// moderación. El slug solo se regenera si llega explícitamente vacío.
func (uc *NegocioUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarNegocioRequest) (*dto.NegocioResponse, error) {
	negocio, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		negocio.Nombre = *in.Nombre
	}
	if in.Tipo != nil {
		tipo := entity.TipoNegocio(*in.Tipo)
		if !tipo.Valido() {
			return nil, domain.ErrInvalidInput
		}
		negocio.Tipo = tipo
	}
	if in.Categoria != nil {
		negocio.Categoria = *in.Categoria
	}
	if in.Descripcion != nil {
		negocio.Descripcion = *in.Descripcion
	}
	if in.Whatsapp != nil {
		negocio.Whatsapp = *in.Whatsapp
	}
	if in.Direccion != nil {
		negocio.Direccion = *in.Direccion
	}
	if in.ImagenURL != nil {
		negocio.ImagenURL = *in.ImagenURL
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			s, err := slug.Resolver(ctx, negocio.Nombre, slug.SufijoBase36, nil)
			if err != nil {
				return nil, err
			}
			negocio.Slug = s
		} else {
			negocio.Slug = *in.Slug
		}
	}
	if in.Activo != nil {
		negocio.Activo = *in.Activo
	}
	if in.Destacado != nil {
		negocio.Destacado = *in.Destacado
	}
	if in.Verificado != nil {
		negocio.Verificado = *in.Verificado
	}
	if err := uc.repo.Actualizar(ctx, negocio); err != nil {
		return nil, err
	}
	return uc.conAgregado(ctx, negocio)
}

// Eliminar borra la ficha y sus reseñas en una sola transacción: nunca quedan
// reseñas huérfanas, con o sin FK en cascada en la base.
func (uc *NegocioUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(negocios repository.NegocioRepository, resenas repository.ResenaRepository) error {
		if err := resenas.EliminarPorNegocio(ctx, id); err != nil {
			return err
		}
		return negocios.Eliminar(ctx, id)
	})
}

// conAgregado completa la respuesta con el promedio (2 decimales) y total de
// reseñas aprobadas. Sin reseñas el promedio viaja como null.
func (uc *NegocioUseCase) conAgregado(ctx context.Context, n *entity.Negocio) (*dto.NegocioResponse, error) {
	resp := toNegocioResponse(n)
	agg, err := uc.resenas.Agregado(ctx, n.ID)
	if err != nil {
		return nil, err
	}
	resp.TotalResenas = agg.Total
	if agg.Total > 0 {
		p := agg.Promedio.Round(2)
		resp.PuntuacionPromedio = &p
	}
	return resp, nil
}

func toNegocioResponse(n *entity.Negocio) *dto.NegocioResponse {
	if n == nil {
		return nil
	}
	return &dto.NegocioResponse{
		ID:          n.ID,
		Nombre:      n.Nombre,
		Slug:        n.Slug,
		Tipo:        string(n.Tipo),
		Categoria:   n.Categoria,
		Descripcion: n.Descripcion,
		Whatsapp:    n.Whatsapp,
		Direccion:   n.Direccion,
		ImagenURL:   n.ImagenURL,
		Activo:      n.Activo,
		Destacado:   n.Destacado,
		Verificado:  n.Verificado,
		CreatedAt:   n.CreatedAt,
	}
}
