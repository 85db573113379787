package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empleo una oferta de trabajo publicada en la bolsa local.
// El slug se asigna una vez al crear y no se regenera al editar.
type Empleo struct {
	ID          string
	Titulo      string
	Slug        string
	Empresa     string
	Descripcion string
	Categoria   string
	Ubicacion   string
	Whatsapp    string
	SalarioMin  *decimal.Decimal // opcional; nil = no informado
	SalarioMax  *decimal.Decimal
	Activo      bool
	Destacado   bool
	CreatedAt   time.Time
}

// Categorías de empleo aceptadas en el formulario público.
const (
	CategoriaEmpleoComercio     = "comercio"
	CategoriaEmpleoHosteleria   = "hosteleria"
	CategoriaEmpleoConstruccion = "construccion"
	CategoriaEmpleoServicios    = "servicios"
	CategoriaEmpleoOtros        = "otros"
)

// CategoriaEmpleoValida indica si la categoría está en el catálogo.
func CategoriaEmpleoValida(c string) bool {
	switch c {
	case CategoriaEmpleoComercio, CategoriaEmpleoHosteleria,
		CategoriaEmpleoConstruccion, CategoriaEmpleoServicios, CategoriaEmpleoOtros:
		return true
	}
	return false
}
