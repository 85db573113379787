package repository

import (
	"context"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

// FiltroEventos filtros de listado de eventos.
type FiltroEventos struct {
	SoloActivos bool
	Categoria   string
	Slug        string
	Limit       int
	Offset      int
}

// EventoRepository define el puerto de persistencia para Evento.
// ExisteSlug soporta la estrategia de colisión con verificación previa.
type EventoRepository interface {
	Crear(ctx context.Context, evento *entity.Evento) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Evento, error)
	ExisteSlug(ctx context.Context, slug string) (bool, error)
	Listar(ctx context.Context, filtro FiltroEventos) ([]*entity.Evento, error)
	Actualizar(ctx context.Context, evento *entity.Evento) error
	Eliminar(ctx context.Context, id string) error
}
