package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el comportamiento
// del adaptador real que importa a los usecases: nil cuando no existe, filtros
// básicos y el agregado de reseñas calculado sobre las aprobadas.

type fakeEmpleoRepo struct {
	empleos map[string]*entity.Empleo
}

func newFakeEmpleoRepo() *fakeEmpleoRepo {
	return &fakeEmpleoRepo{empleos: map[string]*entity.Empleo{}}
}

func (f *fakeEmpleoRepo) Crear(_ context.Context, e *entity.Empleo) error {
	copia := *e
	f.empleos[e.ID] = &copia
	return nil
}

func (f *fakeEmpleoRepo) ObtenerPorID(_ context.Context, id string) (*entity.Empleo, error) {
	e, ok := f.empleos[id]
	if !ok {
		return nil, nil
	}
	copia := *e
	return &copia, nil
}

func (f *fakeEmpleoRepo) ExisteSlug(_ context.Context, slug string) (bool, error) {
	for _, e := range f.empleos {
		if e.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmpleoRepo) Listar(_ context.Context, filtro repository.FiltroEmpleos) ([]*entity.Empleo, error) {
	var out []*entity.Empleo
	for _, e := range f.empleos {
		if filtro.SoloActivos && !e.Activo {
			continue
		}
		if filtro.Categoria != "" && e.Categoria != filtro.Categoria {
			continue
		}
		copia := *e
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeEmpleoRepo) Actualizar(_ context.Context, e *entity.Empleo) error {
	copia := *e
	f.empleos[e.ID] = &copia
	return nil
}

func (f *fakeEmpleoRepo) Eliminar(_ context.Context, id string) error {
	delete(f.empleos, id)
	return nil
}

type fakeNegocioRepo struct {
	negocios map[string]*entity.Negocio
	resenas  *fakeResenaRepo
}

func newFakeNegocioRepo(resenas *fakeResenaRepo) *fakeNegocioRepo {
	return &fakeNegocioRepo{negocios: map[string]*entity.Negocio{}, resenas: resenas}
}

func (f *fakeNegocioRepo) Crear(_ context.Context, n *entity.Negocio) error {
	copia := *n
	f.negocios[n.ID] = &copia
	return nil
}

func (f *fakeNegocioRepo) ObtenerPorID(_ context.Context, id string) (*entity.Negocio, error) {
	n, ok := f.negocios[id]
	if !ok {
		return nil, nil
	}
	copia := *n
	return &copia, nil
}

func (f *fakeNegocioRepo) Listar(ctx context.Context, filtro repository.FiltroNegocios) ([]*repository.NegocioConRating, error) {
	var out []*repository.NegocioConRating
	for _, n := range f.negocios {
		if filtro.SoloActivos && !n.Activo {
			continue
		}
		if filtro.Tipo != "" && n.Tipo != filtro.Tipo {
			continue
		}
		item := &repository.NegocioConRating{Negocio: *n}
		agg, _ := f.resenas.Agregado(ctx, n.ID)
		item.Total = agg.Total
		if agg.Total > 0 {
			p := agg.Promedio
			item.Promedio = &p
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeNegocioRepo) Actualizar(_ context.Context, n *entity.Negocio) error {
	copia := *n
	f.negocios[n.ID] = &copia
	return nil
}

func (f *fakeNegocioRepo) Eliminar(_ context.Context, id string) error {
	delete(f.negocios, id)
	return nil
}

type fakeResenaRepo struct {
	resenas map[string]*entity.Resena
}

func newFakeResenaRepo() *fakeResenaRepo {
	return &fakeResenaRepo{resenas: map[string]*entity.Resena{}}
}

func (f *fakeResenaRepo) Crear(_ context.Context, r *entity.Resena) error {
	copia := *r
	f.resenas[r.ID] = &copia
	return nil
}

func (f *fakeResenaRepo) ObtenerPorID(_ context.Context, id string) (*entity.Resena, error) {
	r, ok := f.resenas[id]
	if !ok {
		return nil, nil
	}
	copia := *r
	return &copia, nil
}

func (f *fakeResenaRepo) ListarAprobadasPorNegocio(_ context.Context, negocioID string) ([]*entity.Resena, error) {
	var out []*entity.Resena
	for _, r := range f.resenas {
		if r.NegocioID == negocioID && r.Aprobada {
			copia := *r
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeResenaRepo) ListarTodas(_ context.Context, limit, offset int) ([]*entity.Resena, error) {
	var out []*entity.Resena
	for _, r := range f.resenas {
		copia := *r
		out = append(out, &copia)
	}
	return out, nil
}

// Agregado replica el AVG/COUNT sobre aprobadas del adaptador real.
func (f *fakeResenaRepo) Agregado(_ context.Context, negocioID string) (repository.AgregadoResenas, error) {
	suma := decimal.Zero
	total := 0
	for _, r := range f.resenas {
		if r.NegocioID == negocioID && r.Aprobada {
			suma = suma.Add(decimal.NewFromInt(int64(r.Puntuacion)))
			total++
		}
	}
	if total == 0 {
		return repository.AgregadoResenas{Promedio: decimal.Zero, Total: 0}, nil
	}
	return repository.AgregadoResenas{
		Promedio: suma.Div(decimal.NewFromInt(int64(total))),
		Total:    total,
	}, nil
}

func (f *fakeResenaRepo) Actualizar(_ context.Context, r *entity.Resena) error {
	copia := *r
	f.resenas[r.ID] = &copia
	return nil
}

func (f *fakeResenaRepo) Eliminar(_ context.Context, id string) error {
	delete(f.resenas, id)
	return nil
}

func (f *fakeResenaRepo) EliminarPorNegocio(_ context.Context, negocioID string) error {
	for id, r := range f.resenas {
		if r.NegocioID == negocioID {
			delete(f.resenas, id)
		}
	}
	return nil
}

type fakeArticuloRepo struct {
	articulos map[string]*entity.Articulo
}

func newFakeArticuloRepo() *fakeArticuloRepo {
	return &fakeArticuloRepo{articulos: map[string]*entity.Articulo{}}
}

func (f *fakeArticuloRepo) Crear(_ context.Context, a *entity.Articulo) error {
	copia := *a
	f.articulos[a.ID] = &copia
	return nil
}

func (f *fakeArticuloRepo) ObtenerPorID(_ context.Context, id string) (*entity.Articulo, error) {
	a, ok := f.articulos[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (f *fakeArticuloRepo) ObtenerPorSlug(_ context.Context, slug string) (*entity.Articulo, error) {
	for _, a := range f.articulos {
		if a.Slug == slug {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeArticuloRepo) Listar(_ context.Context, filtro repository.FiltroArticulos) ([]*entity.Articulo, error) {
	var out []*entity.Articulo
	for _, a := range f.articulos {
		if filtro.SoloPublicados && !a.Publicado {
			continue
		}
		if filtro.Categoria != "" && a.Categoria != filtro.Categoria {
			continue
		}
		copia := *a
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeArticuloRepo) Actualizar(_ context.Context, a *entity.Articulo) error {
	copia := *a
	f.articulos[a.ID] = &copia
	return nil
}

func (f *fakeArticuloRepo) Eliminar(_ context.Context, id string) error {
	delete(f.articulos, id)
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real, contra los mismos fakes.
type fakeTxRunner struct {
	negocios repository.NegocioRepository
	resenas  repository.ResenaRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.NegocioRepository, repository.ResenaRepository) error) error {
	return fn(f.negocios, f.resenas)
}

var _ repository.EmpleoRepository = (*fakeEmpleoRepo)(nil)
var _ repository.NegocioRepository = (*fakeNegocioRepo)(nil)
var _ repository.ResenaRepository = (*fakeResenaRepo)(nil)
var _ repository.ArticuloRepository = (*fakeArticuloRepo)(nil)
var _ usecase.TxRunner = (*fakeTxRunner)(nil)
