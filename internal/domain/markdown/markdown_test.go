package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/markdown"
)

func TestRender_EncabezadoYParrafoConNegrita(t *testing.T) {
	got := markdown.Render("## Título\n\nAlgo de texto en **negrita** aquí")
	assert.Equal(t,
		"<h2>Título</h2>\n<p>Algo de texto en <strong>negrita</strong> aquí</p>",
		got,
		"un encabezado seguido de párrafo con negrita debe producir h2 + p con strong")
}

func TestRender_NivelesDeEncabezado(t *testing.T) {
	got := markdown.Render("# Uno\n## Dos\n### Tres")
	assert.Equal(t, "<h1>Uno</h1>\n<h2>Dos</h2>\n<h3>Tres</h3>", got)
}

// Los "- item" se emiten como <li> sueltos, sin <ul> contenedor.
func TestRender_ElementoListaSinContenedor(t *testing.T) {
	got := markdown.Render("- primero\n- segundo")
	assert.Equal(t, "<li>primero</li>\n<li>segundo</li>", got)
	assert.NotContains(t, got, "<ul>")
}

func TestRender_Cursiva(t *testing.T) {
	got := markdown.Render("texto *en cursiva* normal")
	assert.Equal(t, "<p>texto <em>en cursiva</em> normal</p>", got)
}

func TestRender_NegritaNoSeLeeComoDobleCursiva(t *testing.T) {
	got := markdown.Render("**fuerte** y *suave*")
	assert.Equal(t, "<p><strong>fuerte</strong> y <em>suave</em></p>", got)
}

// Un doble asterisco sin pareja de cierre es texto literal, no un
// énfasis vacío.
func TestRender_DobleAsteriscoSinCierre(t *testing.T) {
	got := markdown.Render("a ** b")
	assert.Equal(t, "<p>a ** b</p>", got)
	assert.NotContains(t, got, "<em>")
}

func TestRender_DobleAsteriscoSueltoTrasCursiva(t *testing.T) {
	got := markdown.Render("*suave* y ** suelto")
	assert.Equal(t, "<p><em>suave</em> y ** suelto</p>", got)
}

// HTML incrustado por el autor debe salir escapado, nunca crudo.
func TestRender_EscapaHTMLDelAutor(t *testing.T) {
	got := markdown.Render("hola <script>alert(1)</script>")
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRender_EscapaHTMLDentroDeEnfasis(t *testing.T) {
	got := markdown.Render("**<b>x</b>**")
	assert.Equal(t, "<p><strong>&lt;b&gt;x&lt;/b&gt;</strong></p>", got)
}

func TestRender_ParrafosSeparadosPorLineaEnBlanco(t *testing.T) {
	got := markdown.Render("línea uno\nlínea dos\n\notro párrafo")
	assert.Equal(t, "<p>línea uno línea dos</p>\n<p>otro párrafo</p>",
		got, "las líneas contiguas se unen y la línea en blanco separa párrafos")
}

func TestParse_ArbolTipado(t *testing.T) {
	doc := markdown.Parse("## Título\n\n- item")
	require.Len(t, doc.Bloques, 2)
	assert.Equal(t, markdown.Encabezado, doc.Bloques[0].Tipo)
	assert.Equal(t, 2, doc.Bloques[0].Nivel)
	assert.Equal(t, markdown.ElementoLista, doc.Bloques[1].Tipo)
}

func TestRender_TextoVacio(t *testing.T) {
	assert.Equal(t, "", markdown.Render(""))
	assert.Equal(t, "", markdown.Render("\n\n\n"))
}
