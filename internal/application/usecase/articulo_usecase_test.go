package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

func crearArticuloRequest() dto.CrearArticuloRequest {
	return dto.CrearArticuloRequest{
		Titulo:    "Fiestas patronales: programación completa",
		Extracto:  "Todo lo que trae la semana de fiestas.",
		Contenido: "## Programación\n\nEste año llega con **más actividades** que nunca.",
		Autor:     "Alcaldía",
		Publicado: true,
	}
}

func TestArticuloCrear_SlugDesdeElTitulo(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	out, err := uc.Crear(context.Background(), crearArticuloRequest())
	require.NoError(t, err)
	assert.Equal(t, "fiestas-patronales-programacion-completa", out.Slug)
}

func TestArticuloCrear_SlugExplicitoSeRespeta(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	in := crearArticuloRequest()
	in.Slug = "fiestas-2026"
	out, err := uc.Crear(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "fiestas-2026", out.Slug)
}

func TestArticuloCrear_TituloVacioRechazado(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	in := crearArticuloRequest()
	in.Titulo = "¡¡¡"
	_, err := uc.Crear(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un título que normaliza a slug vacío no debe persistirse")
}

// El detalle incluye el Markdown original y su render; el render escapa y
// estructura, no se guarda.
func TestArticuloObtenerPorSlug_RenderizaHTML(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	creado, err := uc.Crear(context.Background(), crearArticuloRequest())
	require.NoError(t, err)

	out, err := uc.ObtenerPorSlug(context.Background(), creado.Slug, false)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Contains(t, out.ContenidoHTML, "<h2>Programación</h2>")
	assert.Contains(t, out.ContenidoHTML, "<strong>más actividades</strong>")
	assert.Equal(t, crearArticuloRequest().Contenido, out.Contenido,
		"el Markdown original viaja intacto junto al HTML")
}

// Los borradores no existen para el público pero sí para el panel.
func TestArticuloObtenerPorSlug_BorradorInvisibleEnPublico(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	in := crearArticuloRequest()
	in.Publicado = false
	creado, err := uc.Crear(context.Background(), in)
	require.NoError(t, err)

	publico, err := uc.ObtenerPorSlug(context.Background(), creado.Slug, false)
	require.NoError(t, err)
	assert.Nil(t, publico, "un borrador no debe ser visible en la ruta pública")

	panel, err := uc.ObtenerPorSlug(context.Background(), creado.Slug, true)
	require.NoError(t, err)
	assert.NotNil(t, panel, "el panel sí ve los borradores")
}

// El listado viaja con extracto, sin contenido ni HTML.
func TestArticuloListar_SinContenidoCompleto(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	_, err := uc.Crear(context.Background(), crearArticuloRequest())
	require.NoError(t, err)

	out, err := uc.Listar(context.Background(), repository.FiltroArticulos{SoloPublicados: true, Limit: 20})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	assert.Empty(t, out.Items[0].Contenido)
	assert.Empty(t, out.Items[0].ContenidoHTML)
	assert.NotEmpty(t, out.Items[0].Extracto)
}

func TestArticuloDestacado(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	normal := crearArticuloRequest()
	_, err := uc.Crear(context.Background(), normal)
	require.NoError(t, err)

	destacado := crearArticuloRequest()
	destacado.Titulo = "Aviso importante del acueducto"
	destacado.Destacado = true
	creado, err := uc.Crear(context.Background(), destacado)
	require.NoError(t, err)

	out, err := uc.Destacado(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, creado.ID, out.ID)
}

func TestArticuloDestacado_NoHay(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	out, err := uc.Destacado(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestArticuloActualizar_ContenidoVacioRechazado(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	creado, err := uc.Crear(context.Background(), crearArticuloRequest())
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Actualizar(context.Background(), creado.ID, dto.ActualizarArticuloRequest{Contenido: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArticuloActualizar_SellaUpdatedAt(t *testing.T) {
	repo := newFakeArticuloRepo()
	uc := usecase.NewArticuloUseCase(repo)

	creado, err := uc.Crear(context.Background(), crearArticuloRequest())
	require.NoError(t, err)

	titulo := "Fiestas patronales: programación definitiva"
	out, err := uc.Actualizar(context.Background(), creado.ID, dto.ActualizarArticuloRequest{Titulo: &titulo})
	require.NoError(t, err)

	assert.True(t, out.UpdatedAt.After(creado.UpdatedAt) || out.UpdatedAt.Equal(creado.UpdatedAt))
	assert.False(t, out.UpdatedAt.Before(creado.UpdatedAt))
	assert.Equal(t, creado.Slug, out.Slug, "editar el título no cambia la URL")
}
