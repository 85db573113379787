package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

// AgregadoResenas promedio y total de reseñas aprobadas de un negocio.
// Se calcula siempre en la capa de consulta (AVG/COUNT), nunca se almacena
// desnormalizado: así no puede desfasarse bajo aprobaciones concurrentes.
type AgregadoResenas struct {
	Promedio decimal.Decimal // 0 cuando Total es 0; el usecase lo traduce a "sin reseñas"
	Total    int
}

// ResenaRepository define el puerto de persistencia para Resena.
type ResenaRepository interface {
	Crear(ctx context.Context, resena *entity.Resena) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Resena, error)
	ListarAprobadasPorNegocio(ctx context.Context, negocioID string) ([]*entity.Resena, error)
	ListarTodas(ctx context.Context, limit, offset int) ([]*entity.Resena, error)
	Agregado(ctx context.Context, negocioID string) (AgregadoResenas, error)
	Actualizar(ctx context.Context, resena *entity.Resena) error
	Eliminar(ctx context.Context, id string) error
	EliminarPorNegocio(ctx context.Context, negocioID string) error
}
