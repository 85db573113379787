package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
)

func buildNegocioUC() (*usecase.NegocioUseCase, *fakeNegocioRepo, *fakeResenaRepo) {
	resenas := newFakeResenaRepo()
	negocios := newFakeNegocioRepo(resenas)
	tx := &fakeTxRunner{negocios: negocios, resenas: resenas}
	return usecase.NewNegocioUseCase(negocios, resenas, tx), negocios, resenas
}

func sembrarNegocio(t *testing.T, repo *fakeNegocioRepo, activo bool) *entity.Negocio {
	t.Helper()
	n := &entity.Negocio{
		ID:        uuid.New().String(),
		Nombre:    "Ferretería El Tornillo",
		Slug:      "ferreteria-el-tornillo",
		Tipo:      entity.TipoComercio,
		Categoria: "ferreteria",
		Activo:    activo,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Crear(context.Background(), n))
	return n
}

func sembrarResena(t *testing.T, repo *fakeResenaRepo, negocioID string, puntuacion int, aprobada bool) {
	t.Helper()
	require.NoError(t, repo.Crear(context.Background(), &entity.Resena{
		ID:            uuid.New().String(),
		NegocioID:     negocioID,
		NombreCliente: "Cliente",
		Puntuacion:    puntuacion,
		Aprobada:      aprobada,
		CreatedAt:     time.Now(),
	}))
}

// El alta pública siempre entra pendiente de moderación, diga lo que diga el cliente.
func TestNegocioCrear_NaceSinAprobar(t *testing.T) {
	uc, repo, _ := buildNegocioUC()

	out, err := uc.Crear(context.Background(), dto.CrearNegocioRequest{
		Nombre:    "Carpintería La Viruta",
		Tipo:      "negocio",
		Categoria: "carpinteria",
	})
	require.NoError(t, err)

	assert.False(t, out.Activo, "el alta pública debe quedar pendiente de aprobación")
	assert.False(t, out.Destacado)
	assert.False(t, out.Verificado)

	guardado, err := repo.ObtenerPorID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, guardado.Activo, "lo persistido también debe quedar inactivo")
}

func TestNegocioCrear_TipoInvalido(t *testing.T) {
	uc, _, _ := buildNegocioUC()

	_, err := uc.Crear(context.Background(), dto.CrearNegocioRequest{
		Nombre: "Algo",
		Tipo:   "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// [5,5,4] aprobadas más una sin aprobar: promedio 4.67 sobre 3 reseñas.
func TestNegocioObtener_PromedioSoloAprobadas(t *testing.T) {
	uc, repo, resenas := buildNegocioUC()
	n := sembrarNegocio(t, repo, true)

	sembrarResena(t, resenas, n.ID, 5, true)
	sembrarResena(t, resenas, n.ID, 5, true)
	sembrarResena(t, resenas, n.ID, 4, true)
	sembrarResena(t, resenas, n.ID, 1, false) // pendiente, no cuenta

	out, err := uc.Obtener(context.Background(), n.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalResenas, "solo las aprobadas cuentan")
	require.NotNil(t, out.PuntuacionPromedio)
	assert.Equal(t, "4.67", out.PuntuacionPromedio.String(),
		"el promedio se redondea a dos decimales")
}

// Sin reseñas aprobadas el promedio viaja como null, no como cero.
func TestNegocioObtener_SinResenasPromedioNulo(t *testing.T) {
	uc, repo, resenas := buildNegocioUC()
	n := sembrarNegocio(t, repo, true)
	sembrarResena(t, resenas, n.ID, 2, false)

	out, err := uc.Obtener(context.Background(), n.ID)
	require.NoError(t, err)

	assert.Zero(t, out.TotalResenas)
	assert.Nil(t, out.PuntuacionPromedio, "sin aprobadas el promedio debe ser null")
}

func TestNegocioObtener_NoExiste(t *testing.T) {
	uc, _, _ := buildNegocioUC()

	out, err := uc.Obtener(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, out)
}

// El borrado arrastra las reseñas del negocio y respeta las de otros.
func TestNegocioEliminar_CascadaDeResenas(t *testing.T) {
	uc, repo, resenas := buildNegocioUC()
	n := sembrarNegocio(t, repo, true)
	otro := &entity.Negocio{ID: uuid.New().String(), Nombre: "Otro", Slug: "otro",
		Tipo: entity.TipoComercio, Activo: true, CreatedAt: time.Now()}
	require.NoError(t, repo.Crear(context.Background(), otro))

	sembrarResena(t, resenas, n.ID, 5, true)
	sembrarResena(t, resenas, n.ID, 3, false)
	sembrarResena(t, resenas, otro.ID, 4, true)

	require.NoError(t, uc.Eliminar(context.Background(), n.ID))

	borrado, err := repo.ObtenerPorID(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Nil(t, borrado, "el negocio debe desaparecer")

	todas, err := resenas.ListarTodas(context.Background(), 100, 0)
	require.NoError(t, err)
	require.Len(t, todas, 1, "solo debe sobrevivir la reseña del otro negocio")
	assert.Equal(t, otro.ID, todas[0].NegocioID)
}

// El toggle de aprobación del panel cambia el promedio al instante: el
// agregado se calcula al leer, nunca se almacena desnormalizado.
func TestNegocioActualizar_AprobacionCambiaElAgregado(t *testing.T) {
	uc, repo, resenas := buildNegocioUC()
	resenaUC := usecase.NewResenaUseCase(resenas, repo)
	n := sembrarNegocio(t, repo, true)

	r := &entity.Resena{ID: uuid.New().String(), NegocioID: n.ID,
		NombreCliente: "Ana", Puntuacion: 5, Aprobada: false, CreatedAt: time.Now()}
	require.NoError(t, resenas.Crear(context.Background(), r))

	antes, err := uc.Obtener(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Nil(t, antes.PuntuacionPromedio)

	aprobada := true
	_, err = resenaUC.Actualizar(context.Background(), r.ID, dto.ActualizarResenaRequest{Aprobada: &aprobada})
	require.NoError(t, err)

	despues, err := uc.Obtener(context.Background(), n.ID)
	require.NoError(t, err)
	require.NotNil(t, despues.PuntuacionPromedio)
	assert.Equal(t, "5", despues.PuntuacionPromedio.String())
	assert.Equal(t, 1, despues.TotalResenas)
}
