package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

func crearEmpleoRequest() dto.CrearEmpleoRequest {
	return dto.CrearEmpleoRequest{
		Titulo:    "Se busca panadero con experiencia",
		Empresa:   "Panadería San José",
		Categoria: entity.CategoriaEmpleoComercio,
	}
}

// El envío público siempre entra pendiente; el cliente no puede autoaprobarse.
func TestEmpleoCrearPublico_NaceSinAprobar(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	out, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)

	assert.False(t, out.Activo, "el envío público debe quedar pendiente")
	assert.False(t, out.Destacado)

	guardado, err := repo.ObtenerPorID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, guardado.Activo)
}

// Desde el panel la oferta puede nacer ya visible.
func TestEmpleoCrearAdmin_PuedeNacerActiva(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	out, err := uc.CrearAdmin(context.Background(), dto.CrearEmpleoAdminRequest{
		CrearEmpleoRequest: crearEmpleoRequest(),
		Activo:             true,
	})
	require.NoError(t, err)
	assert.True(t, out.Activo)
}

func TestEmpleoCrear_SlugDerivadoDelTitulo(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	out, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)
	assert.Equal(t, "se-busca-panadero-con-experiencia", out.Slug)
}

// Ante colisión el slug recibe un sufijo; ambos terminan siendo distintos y válidos.
func TestEmpleoCrear_ColisionDeSlugRecibeSufijo(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	primero, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)
	segundo, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)

	assert.NotEqual(t, primero.Slug, segundo.Slug, "dos ofertas con el mismo título no comparten slug")
	patron := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	assert.Regexp(t, patron, segundo.Slug, "el slug con sufijo sigue el formato canónico")
}

func TestEmpleoCrear_CategoriaInvalida(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	in := crearEmpleoRequest()
	in.Categoria = "astronauta"
	_, err := uc.CrearPublico(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El listado público solo ve activas; el del panel lo ve todo.
func TestEmpleoListar_FiltroDeActivas(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	_, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)
	_, err = uc.CrearAdmin(context.Background(), dto.CrearEmpleoAdminRequest{
		CrearEmpleoRequest: crearEmpleoRequest(),
		Activo:             true,
	})
	require.NoError(t, err)

	publicas, err := uc.Listar(context.Background(), repository.FiltroEmpleos{SoloActivos: true, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, publicas.Items, 1)

	todas, err := uc.Listar(context.Background(), repository.FiltroEmpleos{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, todas.Items, 2)
}

// Editar sin tocar el slug lo conserva; mandarlo vacío lo regenera del título vigente.
func TestEmpleoActualizar_SlugEstable(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	creado, err := uc.CrearPublico(context.Background(), crearEmpleoRequest())
	require.NoError(t, err)

	nuevoTitulo := "Se busca maestro panadero"
	out, err := uc.Actualizar(context.Background(), creado.ID, dto.ActualizarEmpleoRequest{Titulo: &nuevoTitulo})
	require.NoError(t, err)
	assert.Equal(t, creado.Slug, out.Slug, "editar el título no debe romper la URL")

	vacio := ""
	out, err = uc.Actualizar(context.Background(), creado.ID, dto.ActualizarEmpleoRequest{Slug: &vacio})
	require.NoError(t, err)
	assert.Equal(t, "se-busca-maestro-panadero", out.Slug,
		"slug vacío pide regenerarlo desde el título vigente")
}

func TestEmpleoActualizar_NoExiste(t *testing.T) {
	repo := newFakeEmpleoRepo()
	uc := usecase.NewEmpleoUseCase(repo)

	titulo := "Otro título"
	out, err := uc.Actualizar(context.Background(), "no-existe", dto.ActualizarEmpleoRequest{Titulo: &titulo})
	require.NoError(t, err)
	assert.Nil(t, out)
}
