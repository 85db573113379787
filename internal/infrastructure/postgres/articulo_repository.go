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

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de persistencia del blog. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const columnasArticulo = `id, titulo, slug, extracto, contenido, categoria, autor, imagen_url, publicado, destacado, created_at, updated_at`

// Crear persiste un nuevo artículo. El índice único de slug devuelve
// ErrDuplicate si el título derivó en un slug ya usado.
func (r *ArticuloRepo) Crear(ctx context.Context, a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (` + columnasArticulo + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Titulo, a.Slug, a.Extracto, a.Contenido, a.Categoria, a.Autor,
		a.ImagenURL, a.Publicado, a.Destacado, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un artículo por ID.
func (r *ArticuloRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Articulo, error) {
	return r.obtener(ctx, `SELECT `+columnasArticulo+` FROM articulos WHERE id = $1`, id)
}

// ObtenerPorSlug obtiene un artículo por slug (la ruta canónica del blog).
func (r *ArticuloRepo) ObtenerPorSlug(ctx context.Context, slug string) (*entity.Articulo, error) {
	return r.obtener(ctx, `SELECT `+columnasArticulo+` FROM articulos WHERE slug = $1`, slug)
}

func (r *ArticuloRepo) obtener(ctx context.Context, query string, arg any) (*entity.Articulo, error) {
	var a entity.Articulo
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Titulo, &a.Slug, &a.Extracto, &a.Contenido, &a.Categoria, &a.Autor,
		&a.ImagenURL, &a.Publicado, &a.Destacado, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}

// Listar lista artículos, destacados primero y después los más recientes.
func (r *ArticuloRepo) Listar(ctx context.Context, f repository.FiltroArticulos) ([]*entity.Articulo, error) {
	query := `SELECT ` + columnasArticulo + ` FROM articulos WHERE 1=1`
	args := []any{}
	n := 0
	if f.SoloPublicados {
		query += ` AND publicado = TRUE`
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
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Titulo, &a.Slug, &a.Extracto, &a.Contenido, &a.Categoria,
			&a.Autor, &a.ImagenURL, &a.Publicado, &a.Destacado, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Actualizar actualiza un artículo existente (updated_at lo sella el usecase).
func (r *ArticuloRepo) Actualizar(ctx context.Context, a *entity.Articulo) error {
	query := `
		UPDATE articulos SET titulo = $2, slug = $3, extracto = $4, contenido = $5, categoria = $6,
			autor = $7, imagen_url = $8, publicado = $9, destacado = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Titulo, a.Slug, a.Extracto, a.Contenido, a.Categoria, a.Autor,
		a.ImagenURL, a.Publicado, a.Destacado, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// Eliminar borra un artículo por ID.
func (r *ArticuloRepo) Eliminar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}
