package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

var _ repository.ResenaRepository = (*ResenaRepo)(nil)

// ResenaRepo implementación del puerto ResenaRepository sobre PostgreSQL (usable con pool o tx).
type ResenaRepo struct {
	q Querier
}

// NewResenaRepository construye el adaptador de persistencia para reseñas. Pasar pool o tx (Querier).
func NewResenaRepository(q Querier) *ResenaRepo {
	return &ResenaRepo{q: q}
}

const columnasResena = `id, negocio_id, nombre_cliente, puntuacion, comentario, aprobada, created_at`

// Crear persiste una nueva reseña.
func (r *ResenaRepo) Crear(ctx context.Context, res *entity.Resena) error {
	query := `
		INSERT INTO resenas (` + columnasResena + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.NegocioID, res.NombreCliente, res.Puntuacion, res.Comentario, res.Aprobada, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resena: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una reseña por ID.
func (r *ResenaRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas WHERE id = $1`
	var res entity.Resena
	err := r.q.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.NegocioID, &res.NombreCliente, &res.Puntuacion, &res.Comentario, &res.Aprobada, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resena: %w", err)
	}
	return &res, nil
}

// ListarAprobadasPorNegocio lista las reseñas visibles de un negocio.
func (r *ResenaRepo) ListarAprobadasPorNegocio(ctx context.Context, negocioID string) ([]*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas
		WHERE negocio_id = $1 AND aprobada = TRUE ORDER BY created_at DESC`
	return r.listar(ctx, query, negocioID)
}

// ListarTodas lista todas las reseñas para el panel, pendientes primero.
func (r *ResenaRepo) ListarTodas(ctx context.Context, limit, offset int) ([]*entity.Resena, error) {
	query := `SELECT ` + columnasResena + ` FROM resenas
		ORDER BY aprobada ASC, created_at DESC LIMIT $1 OFFSET $2`
	return r.listar(ctx, query, limit, offset)
}

func (r *ResenaRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Resena, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resenas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Resena
	for rows.Next() {
		var res entity.Resena
		if err := rows.Scan(&res.ID, &res.NegocioID, &res.NombreCliente, &res.Puntuacion,
			&res.Comentario, &res.Aprobada, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resena: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// Agregado calcula promedio y total de reseñas aprobadas de un negocio.
// Única función de agregación del sistema: detalle y listados la comparten.
func (r *ResenaRepo) Agregado(ctx context.Context, negocioID string) (repository.AgregadoResenas, error) {
	query := `
		SELECT COALESCE(AVG(puntuacion), 0), COUNT(*)
		FROM resenas WHERE negocio_id = $1 AND aprobada = TRUE`
	var agg repository.AgregadoResenas
	var promedio decimal.Decimal
	if err := r.q.QueryRow(ctx, query, negocioID).Scan(&promedio, &agg.Total); err != nil {
		return repository.AgregadoResenas{}, fmt.Errorf("agregado resenas: %w", err)
	}
	agg.Promedio = promedio
	return agg, nil
}

// Actualizar actualiza el estado de aprobación de una reseña.
func (r *ResenaRepo) Actualizar(ctx context.Context, res *entity.Resena) error {
	_, err := r.q.Exec(ctx,
		`UPDATE resenas SET aprobada = $2 WHERE id = $1`,
		res.ID, res.Aprobada,
	)
	if err != nil {
		return fmt.Errorf("update resena: %w", err)
	}
	return nil
}

// Eliminar borra una reseña por ID.
func (r *ResenaRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM resenas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resena: %w", err)
	}
	return nil
}

// EliminarPorNegocio borra todas las reseñas de un negocio (cascada en tx).
func (r *ResenaRepo) EliminarPorNegocio(ctx context.Context, negocioID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM resenas WHERE negocio_id = $1`, negocioID)
	if err != nil {
		return fmt.Errorf("delete resenas por negocio: %w", err)
	}
	return nil
}
