package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

// FiltroNegocios filtros de listado del directorio.
type FiltroNegocios struct {
	SoloActivos bool
	Tipo        entity.TipoNegocio
	Categoria   string
	Slug        string
	Limit       int
	Offset      int
}

// NegocioConRating un negocio junto con su agregado de reseñas aprobadas,
// calculado en la misma consulta para poder ordenar por rating.
type NegocioConRating struct {
	entity.Negocio
	Promedio *decimal.Decimal // nil cuando no hay reseñas aprobadas
	Total    int
}

// NegocioRepository define el puerto de persistencia para Negocio.
type NegocioRepository interface {
	Crear(ctx context.Context, negocio *entity.Negocio) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Negocio, error)
	Listar(ctx context.Context, filtro FiltroNegocios) ([]*NegocioConRating, error)
	Actualizar(ctx context.Context, negocio *entity.Negocio) error
	Eliminar(ctx context.Context, id string) error
}
