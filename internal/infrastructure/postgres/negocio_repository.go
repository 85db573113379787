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

var _ repository.NegocioRepository = (*NegocioRepo)(nil)

// NegocioRepo implementación del puerto NegocioRepository sobre PostgreSQL (usable con pool o tx).
type NegocioRepo struct {
	q Querier
}

// NewNegocioRepository construye el adaptador de persistencia del directorio. Pasar pool o tx (Querier).
func NewNegocioRepository(q Querier) *NegocioRepo {
	return &NegocioRepo{q: q}
}

const columnasNegocio = `id, nombre, slug, tipo, categoria, descripcion, whatsapp, direccion, imagen_url, activo, destacado, verificado, created_at`

// Crear persiste una nueva ficha.
func (r *NegocioRepo) Crear(ctx context.Context, n *entity.Negocio) error {
	query := `
		INSERT INTO negocios (` + columnasNegocio + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Nombre, n.Slug, string(n.Tipo), n.Categoria, n.Descripcion,
		n.Whatsapp, n.Direccion, n.ImagenURL, n.Activo, n.Destacado, n.Verificado, n.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert negocio: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una ficha por ID.
func (r *NegocioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Negocio, error) {
	query := `SELECT ` + columnasNegocio + ` FROM negocios WHERE id = $1`
	var n entity.Negocio
	err := r.q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Nombre, &n.Slug, &n.Tipo, &n.Categoria, &n.Descripcion,
		&n.Whatsapp, &n.Direccion, &n.ImagenURL, &n.Activo, &n.Destacado, &n.Verificado, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return &n, nil
}

// Listar lista fichas con el agregado de reseñas aprobadas resuelto en la
// misma consulta, para poder ordenar por destacado y después por promedio.
// El agregado se calcula siempre aquí, nunca se almacena desnormalizado.
func (r *NegocioRepo) Listar(ctx context.Context, f repository.FiltroNegocios) ([]*repository.NegocioConRating, error) {
	query := `
		SELECT n.id, n.nombre, n.slug, n.tipo, n.categoria, n.descripcion, n.whatsapp, n.direccion,
		       n.imagen_url, n.activo, n.destacado, n.verificado, n.created_at,
		       AVG(res.puntuacion) FILTER (WHERE res.aprobada) AS promedio,
		       COUNT(res.id)       FILTER (WHERE res.aprobada) AS total
		FROM negocios n
		LEFT JOIN resenas res ON res.negocio_id = n.id
		WHERE 1=1`
	args := []any{}
	n := 0
	if f.SoloActivos {
		query += ` AND n.activo = TRUE`
	}
	if f.Tipo != "" {
		n++
		query += fmt.Sprintf(` AND n.tipo = $%d`, n)
		args = append(args, string(f.Tipo))
	}
	if f.Categoria != "" {
		n++
		query += fmt.Sprintf(` AND n.categoria = $%d`, n)
		args = append(args, f.Categoria)
	}
	if f.Slug != "" {
		n++
		query += fmt.Sprintf(` AND n.slug = $%d`, n)
		args = append(args, f.Slug)
	}
	query += `
		GROUP BY n.id
		ORDER BY n.destacado DESC, promedio DESC NULLS LAST, n.created_at DESC`
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()
	var list []*repository.NegocioConRating
	for rows.Next() {
		var item repository.NegocioConRating
		if err := rows.Scan(
			&item.ID, &item.Nombre, &item.Slug, &item.Tipo, &item.Categoria, &item.Descripcion,
			&item.Whatsapp, &item.Direccion, &item.ImagenURL, &item.Activo, &item.Destacado,
			&item.Verificado, &item.CreatedAt, &item.Promedio, &item.Total,
		); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Actualizar actualiza una ficha existente, toggles de moderación incluidos.
func (r *NegocioRepo) Actualizar(ctx context.Context, n *entity.Negocio) error {
	query := `
		UPDATE negocios SET nombre = $2, slug = $3, tipo = $4, categoria = $5, descripcion = $6,
			whatsapp = $7, direccion = $8, imagen_url = $9, activo = $10, destacado = $11, verificado = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.Nombre, n.Slug, string(n.Tipo), n.Categoria, n.Descripcion,
		n.Whatsapp, n.Direccion, n.ImagenURL, n.Activo, n.Destacado, n.Verificado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update negocio: %w", err)
	}
	return nil
}

// Eliminar borra una ficha por ID. El borrado de sus reseñas corre en la
// misma transacción desde el usecase.
func (r *NegocioRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM negocios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete negocio: %w", err)
	}
	return nil
}
