package dto

import "time"

// CrearArticuloRequest alta de un artículo del blog (solo panel de admin).
// Si Slug viene vacío se deriva del título.
type CrearArticuloRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=3,max=200"`
	Slug      string `json:"slug" validate:"omitempty,max=220"`
	Extracto  string `json:"extracto" validate:"max=500"`
	Contenido string `json:"contenido" validate:"required"`
	Categoria string `json:"categoria" validate:"max=100"`
	Autor     string `json:"autor" validate:"max=100"`
	ImagenURL string `json:"imagen_url" validate:"omitempty,url"`
	Publicado bool   `json:"publicado"`
	Destacado bool   `json:"destacado"`
}

// ActualizarArticuloRequest actualización parcial.
// Slug: nil conserva el actual; "" lo regenera desde el título.
type ActualizarArticuloRequest struct {
	Titulo    *string `json:"titulo" validate:"omitempty,min=3,max=200"`
	Slug      *string `json:"slug"`
	Extracto  *string `json:"extracto"`
	Contenido *string `json:"contenido"`
	Categoria *string `json:"categoria"`
	Autor     *string `json:"autor"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
	Publicado *bool   `json:"publicado"`
	Destacado *bool   `json:"destacado"`
}

// ArticuloResponse salida de un artículo. ContenidoHTML solo se rellena en el
// detalle: es el Markdown renderizado en lectura, nunca almacenado.
type ArticuloResponse struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	Slug          string    `json:"slug"`
	Extracto      string    `json:"extracto"`
	Contenido     string    `json:"contenido,omitempty"`
	ContenidoHTML string    `json:"contenido_html,omitempty"`
	Categoria     string    `json:"categoria,omitempty"`
	Autor         string    `json:"autor,omitempty"`
	ImagenURL     string    `json:"imagen_url,omitempty"`
	Publicado     bool      `json:"publicado"`
	Destacado     bool      `json:"destacado"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ArticuloListResponse lista paginada del blog.
type ArticuloListResponse struct {
	Items []ArticuloResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
