package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementación del puerto EventoRepository sobre PostgreSQL (usable con pool o tx).
type EventoRepo struct {
	q Querier
}

// NewEventoRepository construye el adaptador de persistencia para eventos. Pasar pool o tx (Querier).
func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

const columnasEvento = `id, titulo, slug, descripcion, categoria, lugar, fecha, imagen_url, whatsapp, activo, destacado, created_at`

// Crear persiste un nuevo evento.
func (r *EventoRepo) Crear(ctx context.Context, e *entity.Evento) error {
	query := `
		INSERT INTO eventos (` + columnasEvento + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Slug, e.Descripcion, e.Categoria, e.Lugar, e.Fecha,
		e.ImagenURL, e.Whatsapp, e.Activo, e.Destacado, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un evento por ID.
func (r *EventoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Evento, error) {
	query := `SELECT ` + columnasEvento + ` FROM eventos WHERE id = $1`
	var e entity.Evento
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Titulo, &e.Slug, &e.Descripcion, &e.Categoria, &e.Lugar, &e.Fecha,
		&e.ImagenURL, &e.Whatsapp, &e.Activo, &e.Destacado, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return &e, nil
}

// ExisteSlug consulta si un slug ya está en uso (estrategia de colisión de eventos).
func (r *EventoRepo) ExisteSlug(ctx context.Context, slug string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM eventos WHERE slug = $1)`, slug).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe slug evento: %w", err)
	}
	return existe, nil
}

// Listar lista eventos; el orden público es destacado primero y después por
// fecha de celebración ascendente.
func (r *EventoRepo) Listar(ctx context.Context, f repository.FiltroEventos) ([]*entity.Evento, error) {
	query := `SELECT ` + columnasEvento + ` FROM eventos WHERE 1=1`
	args := []any{}
	n := 0
	if f.SoloActivos {
		query += ` AND activo = TRUE`
	}
	if f.Categoria != "" {
		n++
		query += fmt.Sprintf(` AND categoria = $%d`, n)
		args = append(args, f.Categoria)
	}
	if f.Slug != "" {
		n++
		query += fmt.Sprintf(` AND slug = $%d`, n)
		args = append(args, f.Slug)
	}
	query += ` ORDER BY destacado DESC, fecha ASC`
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		if err := rows.Scan(&e.ID, &e.Titulo, &e.Slug, &e.Descripcion, &e.Categoria, &e.Lugar,
			&e.Fecha, &e.ImagenURL, &e.Whatsapp, &e.Activo, &e.Destacado, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Actualizar actualiza un evento existente.
func (r *EventoRepo) Actualizar(ctx context.Context, e *entity.Evento) error {
	query := `
		UPDATE eventos SET titulo = $2, slug = $3, descripcion = $4, categoria = $5, lugar = $6,
			fecha = $7, imagen_url = $8, whatsapp = $9, activo = $10, destacado = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Slug, e.Descripcion, e.Categoria, e.Lugar, e.Fecha,
		e.ImagenURL, e.Whatsapp, e.Activo, e.Destacado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update evento: %w", err)
	}
	return nil
}

// Eliminar borra un evento por ID.
func (r *EventoRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	return nil
}
