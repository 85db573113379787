package repository

import (
	"context"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

// FiltroEmpleos filtros de listado de empleos.
type FiltroEmpleos struct {
	SoloActivos bool // true en rutas públicas; false en el panel de admin
	Categoria   string
	Slug        string
	Limit       int
	Offset      int
}

// EmpleoRepository define el puerto de persistencia para Empleo (DIP).
type EmpleoRepository interface {
	Crear(ctx context.Context, empleo *entity.Empleo) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Empleo, error)
	ExisteSlug(ctx context.Context, slug string) (bool, error)
	Listar(ctx context.Context, filtro FiltroEmpleos) ([]*entity.Empleo, error)
	Actualizar(ctx context.Context, empleo *entity.Empleo) error
	Eliminar(ctx context.Context, id string) error
}
