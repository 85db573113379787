package markdown

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML serializa un Documento a fragmentos HTML. Todo texto crudo pasa
// por html.EscapeString: el escape vive aquí y no en el parser.
//
// Los elementos de lista se emiten como <li> sueltos, sin <ul> contenedor;
// ese es el formato que consume el front actual.
func RenderHTML(doc Documento) string {
	var b strings.Builder
	for i, bloque := range doc.Bloques {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch bloque.Tipo {
		case Encabezado:
			fmt.Fprintf(&b, "<h%d>%s</h%d>", bloque.Nivel, renderInlines(bloque.Inlines), bloque.Nivel)
		case ElementoLista:
			fmt.Fprintf(&b, "<li>%s</li>", renderInlines(bloque.Inlines))
		default:
			fmt.Fprintf(&b, "<p>%s</p>", renderInlines(bloque.Inlines))
		}
	}
	return b.String()
}

// Render parsea y serializa en un paso; es el punto de entrada que usan los
// usecases de artículos.
func Render(texto string) string {
	return RenderHTML(Parse(texto))
}

func renderInlines(inlines []Inline) string {
	var b strings.Builder
	for _, in := range inlines {
		texto := html.EscapeString(in.Texto)
		switch in.Estilo {
		case Negrita:
			b.WriteString("<strong>" + texto + "</strong>")
		case Cursiva:
			b.WriteString("<em>" + texto + "</em>")
		default:
			b.WriteString(texto)
		}
	}
	return b.String()
}
