package entity

import "time"

// Articulo una entrada del blog municipal. Contenido es Markdown crudo;
// el HTML se genera al leer, nunca se almacena.
type Articulo struct {
	ID        string
	Titulo    string
	Slug      string
	Extracto  string
	Contenido string
	Categoria string
	Autor     string
	ImagenURL string
	Publicado bool
	Destacado bool
	CreatedAt time.Time
	UpdatedAt time.Time // se actualiza en cada edición
}
