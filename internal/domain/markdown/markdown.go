// Package markdown convierte el subconjunto de Markdown permitido en los
// artículos a fragmentos HTML. Primero se parsea a un árbol tipado
// (encabezados, párrafos, elementos de lista, énfasis en línea) y después un
// serializador escapa todo el texto crudo, de modo que HTML ajeno en el
// contenido nunca pasa sin escapar.
package markdown

import "strings"

// Inline un tramo de texto en línea con su estilo.
type Inline struct {
	Estilo Estilo
	Texto  string
}

// Estilo estilos en línea soportados.
type Estilo int

const (
	Plano Estilo = iota
	Negrita
	Cursiva
)

// Bloque nodo de nivel de bloque del documento.
type Bloque struct {
	Tipo    TipoBloque
	Nivel   int // solo encabezados: 1..3
	Inlines []Inline
}

// TipoBloque tipos de bloque soportados.
type TipoBloque int

const (
	Parrafo TipoBloque = iota
	Encabezado
	ElementoLista
)

// Documento árbol de bloques de un contenido.
type Documento struct {
	Bloques []Bloque
}

// Parse convierte el texto Markdown del artículo en un Documento.
// Reglas, en orden: líneas que empiezan con ###/##/# son encabezados de nivel
// 3/2/1; líneas que empiezan con "- " son elementos de lista; el resto se
// agrupa en párrafos separados por líneas en blanco.
func Parse(texto string) Documento {
	var doc Documento
	var parrafo []string

	cerrarParrafo := func() {
		if len(parrafo) == 0 {
			return
		}
		doc.Bloques = append(doc.Bloques, Bloque{
			Tipo:    Parrafo,
			Inlines: parseInlines(strings.Join(parrafo, " ")),
		})
		parrafo = nil
	}

	for _, linea := range strings.Split(texto, "\n") {
		recortada := strings.TrimRight(linea, " \t\r")

		switch {
		case recortada == "":
			cerrarParrafo()
		case strings.HasPrefix(recortada, "### "):
			cerrarParrafo()
			doc.Bloques = append(doc.Bloques, Bloque{
				Tipo: Encabezado, Nivel: 3,
				Inlines: parseInlines(strings.TrimPrefix(recortada, "### ")),
			})
		case strings.HasPrefix(recortada, "## "):
			cerrarParrafo()
			doc.Bloques = append(doc.Bloques, Bloque{
				Tipo: Encabezado, Nivel: 2,
				Inlines: parseInlines(strings.TrimPrefix(recortada, "## ")),
			})
		case strings.HasPrefix(recortada, "# "):
			cerrarParrafo()
			doc.Bloques = append(doc.Bloques, Bloque{
				Tipo: Encabezado, Nivel: 1,
				Inlines: parseInlines(strings.TrimPrefix(recortada, "# ")),
			})
		case strings.HasPrefix(recortada, "- "):
			cerrarParrafo()
			doc.Bloques = append(doc.Bloques, Bloque{
				Tipo:    ElementoLista,
				Inlines: parseInlines(strings.TrimPrefix(recortada, "- ")),
			})
		default:
			parrafo = append(parrafo, strings.TrimSpace(recortada))
		}
	}
	cerrarParrafo()
	return doc
}

// parseInlines separa **negrita** y *cursiva* del texto plano.
// Se resuelve ** antes que * para que la negrita no se lea como dos cursivas.
func parseInlines(s string) []Inline {
	var out []Inline
	var plano strings.Builder

	volcarPlano := func() {
		if plano.Len() > 0 {
			out = append(out, Inline{Estilo: Plano, Texto: plano.String()})
			plano.Reset()
		}
	}

	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "**") {
			if fin := strings.Index(s[i+2:], "**"); fin >= 0 {
				volcarPlano()
				out = append(out, Inline{Estilo: Negrita, Texto: s[i+2 : i+2+fin]})
				i += fin + 4
				continue
			}
			// Doble asterisco sin cierre: queda como texto literal.
			plano.WriteString("**")
			i += 2
			continue
		}
		if s[i] == '*' {
			if fin := strings.IndexByte(s[i+1:], '*'); fin >= 0 {
				volcarPlano()
				out = append(out, Inline{Estilo: Cursiva, Texto: s[i+1 : i+1+fin]})
				i += fin + 2
				continue
			}
		}
		plano.WriteByte(s[i])
		i++
	}
	volcarPlano()
	return out
}
