package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/markdown"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/slug"
)

// ArticuloUseCase casos de uso del blog. La autoría es solo de admins; el
// contenido se guarda como Markdown y se renderiza en lectura.
type ArticuloUseCase struct {
	repo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(repo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo}
}

// Crear da de alta un artículo. Si no llega slug explícito se deriva del
// título sin verificación de existencia; el índice único de la tabla es la
// última barrera contra duplicados.
func (uc *ArticuloUseCase) Crear(ctx context.Context, in dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	s := in.Slug
	if s == "" {
		var err error
		s, err = slug.Resolver(ctx, in.Titulo, slug.Ninguna, nil)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now()
	articulo := &entity.Articulo{
		ID:        uuid.New().String(),
		Titulo:    in.Titulo,
		Slug:      s,
		Extracto:  in.Extracto,
		Contenido: in.Contenido,
		Categoria: in.Categoria,
		Autor:     in.Autor,
		ImagenURL: in.ImagenURL,
		Publicado: in.Publicado,
		Destacado: in.Destacado,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Crear(ctx, articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo, false), nil
}

// ObtenerPorSlug devuelve el detalle con el contenido renderizado a HTML.
// Fuera del panel solo son visibles los publicados.
func (uc *ArticuloUseCase) ObtenerPorSlug(ctx context.Context, s string, incluirNoPublicados bool) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.ObtenerPorSlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, nil
	}
	if !articulo.Publicado && !incluirNoPublicados {
		return nil, nil
	}
	return toArticuloResponse(articulo, true), nil
}

// Listar lista artículos; las rutas públicas fijan SoloPublicados. El listado
// no incluye el contenido ni su HTML, solo el extracto.
func (uc *ArticuloUseCase) Listar(ctx context.Context, filtro repository.FiltroArticulos) (*dto.ArticuloListResponse, error) {
	list, err := uc.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		resp := toArticuloResponse(a, false)
		resp.Contenido = ""
		items = append(items, *resp)
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Destacado devuelve el primer artículo publicado marcado como destacado.
// Puede haber varios marcados; se muestra el primero encontrado.
func (uc *ArticuloUseCase) Destacado(ctx context.Context) (*dto.ArticuloResponse, error) {
	list, err := uc.repo.Listar(ctx, repository.FiltroArticulos{SoloPublicados: true, Limit: 50})
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		if a.Destacado {
			return toArticuloResponse(a, true), nil
		}
	}
	return nil, nil
}

// Actualizar aplica una actualización parcial y sella updated_at. El slug no
// se regenera al editar salvo que llegue explícitamente vacío.
func (uc *ArticuloUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarArticuloRequest) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, nil
	}
	if in.Titulo != nil {
		articulo.Titulo = *in.Titulo
	}
	if in.Slug != nil {
		if *in.Slug == "" {
			s, err := slug.Resolver(ctx, articulo.Titulo, slug.Ninguna, nil)
			if err != nil {
				return nil, err
			}
			articulo.Slug = s
		} else {
			articulo.Slug = *in.Slug
		}
	}
	if in.Extracto != nil {
		articulo.Extracto = *in.Extracto
	}
	if in.Contenido != nil {
		if *in.Contenido == "" {
			return nil, domain.ErrInvalidInput
		}
		articulo.Contenido = *in.Contenido
	}
	if in.Categoria != nil {
		articulo.Categoria = *in.Categoria
	}
	if in.Autor != nil {
		articulo.Autor = *in.Autor
	}
	if in.ImagenURL != nil {
		articulo.ImagenURL = *in.ImagenURL
	}
	if in.Publicado != nil {
		articulo.Publicado = *in.Publicado
	}
	if in.Destacado != nil {
		articulo.Destacado = *in.Destacado
	}
	articulo.UpdatedAt = time.Now()
	if err := uc.repo.Actualizar(ctx, articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo, false), nil
}

// Eliminar borra definitivamente un artículo.
func (uc *ArticuloUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

func toArticuloResponse(a *entity.Articulo, conHTML bool) *dto.ArticuloResponse {
	if a == nil {
		return nil
	}
	resp := &dto.ArticuloResponse{
		ID:        a.ID,
		Titulo:    a.Titulo,
		Slug:      a.Slug,
		Extracto:  a.Extracto,
		Contenido: a.Contenido,
		Categoria: a.Categoria,
		Autor:     a.Autor,
		ImagenURL: a.ImagenURL,
		Publicado: a.Publicado,
		Destacado: a.Destacado,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if conHTML {
		resp.ContenidoHTML = markdown.Render(a.Contenido)
	}
	return resp
}
