package entity

import "time"

// TipoNegocio distingue fichas de profesionales independientes y de negocios
// con local. Comparten tabla y moderación; solo cambia el filtro de listado.
type TipoNegocio string

const (
	TipoProfesional TipoNegocio = "profesional"
	TipoComercio    TipoNegocio = "negocio"
)

// Valido indica si el tipo es uno de los soportados.
func (t TipoNegocio) Valido() bool {
	return t == TipoProfesional || t == TipoComercio
}

// Negocio una ficha del directorio de profesionales y negocios.
// Verificado es la insignia de confianza que concede un administrador;
// solo aplica a este tipo de contenido.
type Negocio struct {
	ID          string
	Nombre      string
	Slug        string
	Tipo        TipoNegocio
	Categoria   string
	Descripcion string
	Whatsapp    string
	Direccion   string
	ImagenURL   string
	Activo      bool
	Destacado   bool
	Verificado  bool
	CreatedAt   time.Time
}
