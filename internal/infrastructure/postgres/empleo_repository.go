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

var _ repository.EmpleoRepository = (*EmpleoRepo)(nil)

// EmpleoRepo implementación del puerto EmpleoRepository sobre PostgreSQL (usable con pool o tx).
type EmpleoRepo struct {
	q Querier
}

// NewEmpleoRepository construye el adaptador de persistencia para empleos. Pasar pool o tx (Querier).
func NewEmpleoRepository(q Querier) *EmpleoRepo {
	return &EmpleoRepo{q: q}
}

const columnasEmpleo = `id, titulo, slug, empresa, descripcion, categoria, ubicacion, whatsapp, salario_min, salario_max, activo, destacado, created_at`

// Crear persiste una nueva oferta.
func (r *EmpleoRepo) Crear(ctx context.Context, e *entity.Empleo) error {
	query := `
		INSERT INTO empleos (` + columnasEmpleo + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Slug, e.Empresa, e.Descripcion, e.Categoria, e.Ubicacion,
		e.Whatsapp, e.SalarioMin, e.SalarioMax, e.Activo, e.Destacado, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleo: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una oferta por ID.
func (r *EmpleoRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Empleo, error) {
	query := `SELECT ` + columnasEmpleo + ` FROM empleos WHERE id = $1`
	var e entity.Empleo
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Titulo, &e.Slug, &e.Empresa, &e.Descripcion, &e.Categoria, &e.Ubicacion,
		&e.Whatsapp, &e.SalarioMin, &e.SalarioMax, &e.Activo, &e.Destacado, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleo: %w", err)
	}
	return &e, nil
}

// ExisteSlug consulta si un slug ya está en uso.
func (r *EmpleoRepo) ExisteSlug(ctx context.Context, slug string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM empleos WHERE slug = $1)`, slug).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe slug empleo: %w", err)
	}
	return existe, nil
}

// Listar lista ofertas según filtro; el orden público es destacado primero y
// después las más recientes.
func (r *EmpleoRepo) Listar(ctx context.Context, f repository.FiltroEmpleos) ([]*entity.Empleo, error) {
	query := `SELECT ` + columnasEmpleo + ` FROM empleos WHERE 1=1`
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
	query += ` ORDER BY destacado DESC, created_at DESC`
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empleos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleo
	for rows.Next() {
		var e entity.Empleo
		if err := rows.Scan(&e.ID, &e.Titulo, &e.Slug, &e.Empresa, &e.Descripcion, &e.Categoria,
			&e.Ubicacion, &e.Whatsapp, &e.SalarioMin, &e.SalarioMax, &e.Activo, &e.Destacado, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan empleo: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Actualizar actualiza una oferta existente.
func (r *EmpleoRepo) Actualizar(ctx context.Context, e *entity.Empleo) error {
	query := `
		UPDATE empleos SET titulo = $2, slug = $3, empresa = $4, descripcion = $5, categoria = $6,
			ubicacion = $7, whatsapp = $8, salario_min = $9, salario_max = $10, activo = $11, destacado = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Slug, e.Empresa, e.Descripcion, e.Categoria, e.Ubicacion,
		e.Whatsapp, e.SalarioMin, e.SalarioMax, e.Activo, e.Destacado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update empleo: %w", err)
	}
	return nil
}

// Eliminar borra una oferta por ID.
func (r *EmpleoRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM empleos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empleo: %w", err)
	}
	return nil
}
