package repository

import (
	"context"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

// FiltroArticulos filtros de listado del blog.
type FiltroArticulos struct {
	SoloPublicados bool
	Categoria      string
	Slug           string
	Limit          int
	Offset         int
}

// ArticuloRepository define el puerto de persistencia para Articulo.
type ArticuloRepository interface {
	Crear(ctx context.Context, articulo *entity.Articulo) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Articulo, error)
	ObtenerPorSlug(ctx context.Context, slug string) (*entity.Articulo, error)
	Listar(ctx context.Context, filtro FiltroArticulos) ([]*entity.Articulo, error)
	Actualizar(ctx context.Context, articulo *entity.Articulo) error
	Eliminar(ctx context.Context, id string) error
}
