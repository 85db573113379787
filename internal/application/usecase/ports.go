package usecase

import (
	"context"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción. Se usa para el borrado en cascada negocio + reseñas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		negocios repository.NegocioRepository,
		resenas repository.ResenaRepository,
	) error) error
}
