package dto

import "time"

// CrearEventoRequest entrada del formulario público de eventos.
type CrearEventoRequest struct {
	Titulo      string    `json:"titulo" validate:"required,min=3,max=200"`
	Descripcion string    `json:"descripcion" validate:"max=5000"`
	Categoria   string    `json:"categoria" validate:"required"`
	Lugar       string    `json:"lugar" validate:"max=200"`
	Fecha       time.Time `json:"fecha" validate:"required"`
	ImagenURL   string    `json:"imagen_url" validate:"omitempty,url"`
	Whatsapp    string    `json:"whatsapp" validate:"max=30"`
}

// CrearEventoAdminRequest creación desde el panel: puede nacer activa.
type CrearEventoAdminRequest struct {
	CrearEventoRequest
	Activo bool `json:"activo"`
}

// ActualizarEventoRequest actualización parcial.
// Slug: nil conserva el actual; "" lo regenera desde el título.
type ActualizarEventoRequest struct {
	Titulo      *string    `json:"titulo" validate:"omitempty,min=3,max=200"`
	Descripcion *string    `json:"descripcion"`
	Categoria   *string    `json:"categoria"`
	Lugar       *string    `json:"lugar"`
	Fecha       *time.Time `json:"fecha"`
	ImagenURL   *string    `json:"imagen_url" validate:"omitempty,url"`
	Whatsapp    *string    `json:"whatsapp"`
	Slug        *string    `json:"slug"`
	Activo      *bool      `json:"activo"`
	Destacado   *bool      `json:"destacado"`
}

// EventoResponse salida de un evento.
type EventoResponse struct {
	ID          string    `json:"id"`
	Titulo      string    `json:"titulo"`
	Slug        string    `json:"slug"`
	Descripcion string    `json:"descripcion"`
	Categoria   string    `json:"categoria"`
	Lugar       string    `json:"lugar"`
	Fecha       time.Time `json:"fecha"`
	ImagenURL   string    `json:"imagen_url,omitempty"`
	Whatsapp    string    `json:"whatsapp,omitempty"`
	Activo      bool      `json:"activo"`
	Destacado   bool      `json:"destacado"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventoListResponse lista paginada de eventos.
type EventoListResponse struct {
	Items []EventoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
