package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearNegocioRequest alta pública de una ficha del directorio.
type CrearNegocioRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=200"`
	Tipo        string `json:"tipo" validate:"required,oneof=profesional negocio"`
	Categoria   string `json:"categoria" validate:"required,max=100"`
	Descripcion string `json:"descripcion" validate:"max=5000"`
	Whatsapp    string `json:"whatsapp" validate:"max=30"`
	Direccion   string `json:"direccion" validate:"max=300"`
	ImagenURL   string `json:"imagen_url" validate:"omitempty,url"`
}

// ActualizarNegocioRequest actualización parcial; incluye los toggles de
// moderación (activo, destacado, verificado) que usa el panel.
// Slug: nil conserva el actual; "" lo regenera desde el nombre.
type ActualizarNegocioRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=200"`
	Tipo        *string `json:"tipo" validate:"omitempty,oneof=profesional negocio"`
	Categoria   *string `json:"categoria"`
	Descripcion *string `json:"descripcion"`
	Whatsapp    *string `json:"whatsapp"`
	Direccion   *string `json:"direccion"`
	ImagenURL   *string `json:"imagen_url" validate:"omitempty,url"`
	Slug        *string `json:"slug"`
	Activo      *bool   `json:"activo"`
	Destacado   *bool   `json:"destacado"`
	Verificado  *bool   `json:"verificado"`
}

// NegocioResponse salida de una ficha del directorio con su agregado de
// reseñas. PuntuacionPromedio viaja como null cuando no hay reseñas
// aprobadas, para que el front muestre "sin reseñas" y no un cero.
type NegocioResponse struct {
	ID                 string           `json:"id"`
	Nombre             string           `json:"nombre"`
	Slug               string           `json:"slug"`
	Tipo               string           `json:"tipo"`
	Categoria          string           `json:"categoria"`
	Descripcion        string           `json:"descripcion"`
	Whatsapp           string           `json:"whatsapp,omitempty"`
	Direccion          string           `json:"direccion,omitempty"`
	ImagenURL          string           `json:"imagen_url,omitempty"`
	Activo             bool             `json:"activo"`
	Destacado          bool             `json:"destacado"`
	Verificado         bool             `json:"verificado"`
	PuntuacionPromedio *decimal.Decimal `json:"puntuacion_promedio"`
	TotalResenas       int              `json:"total_resenas"`
	CreatedAt          time.Time        `json:"created_at"`
}

// NegocioListResponse lista paginada del directorio.
type NegocioListResponse struct {
	Items []NegocioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
