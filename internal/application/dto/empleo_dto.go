package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearEmpleoRequest entrada del formulario público de empleos.
// Activo no se acepta del exterior: todo envío público entra pendiente.
type CrearEmpleoRequest struct {
	Titulo      string           `json:"titulo" validate:"required,min=3,max=200"`
	Empresa     string           `json:"empresa" validate:"required,min=2,max=200"`
	Descripcion string           `json:"descripcion" validate:"max=5000"`
	Categoria   string           `json:"categoria" validate:"required"`
	Ubicacion   string           `json:"ubicacion" validate:"max=200"`
	Whatsapp    string           `json:"whatsapp" validate:"max=30"`
	SalarioMin  *decimal.Decimal `json:"salario_min"`
	SalarioMax  *decimal.Decimal `json:"salario_max"`
}

// CrearEmpleoAdminRequest creación desde el panel: puede nacer activa.
type CrearEmpleoAdminRequest struct {
	CrearEmpleoRequest
	Activo bool `json:"activo"`
}

// ActualizarEmpleoRequest actualización parcial (solo campos presentes).
// Slug: nil conserva el actual; "" lo regenera desde el título.
type ActualizarEmpleoRequest struct {
	Titulo      *string          `json:"titulo" validate:"omitempty,min=3,max=200"`
	Empresa     *string          `json:"empresa" validate:"omitempty,min=2,max=200"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"`
	Ubicacion   *string          `json:"ubicacion"`
	Whatsapp    *string          `json:"whatsapp"`
	SalarioMin  *decimal.Decimal `json:"salario_min"`
	SalarioMax  *decimal.Decimal `json:"salario_max"`
	Slug        *string          `json:"slug"`
	Activo      *bool            `json:"activo"`
	Destacado   *bool            `json:"destacado"`
}

// EmpleoResponse salida de una oferta de empleo.
type EmpleoResponse struct {
	ID          string           `json:"id"`
	Titulo      string           `json:"titulo"`
	Slug        string           `json:"slug"`
	Empresa     string           `json:"empresa"`
	Descripcion string           `json:"descripcion"`
	Categoria   string           `json:"categoria"`
	Ubicacion   string           `json:"ubicacion"`
	Whatsapp    string           `json:"whatsapp"`
	SalarioMin  *decimal.Decimal `json:"salario_min,omitempty"`
	SalarioMax  *decimal.Decimal `json:"salario_max,omitempty"`
	Activo      bool             `json:"activo"`
	Destacado   bool             `json:"destacado"`
	CreatedAt   time.Time        `json:"created_at"`
}

// EmpleoListResponse lista paginada de empleos.
type EmpleoListResponse struct {
	Items []EmpleoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
