package entity

import "time"

// Evento una entrada del calendario de eventos del pueblo.
type Evento struct {
	ID          string
	Titulo      string
	Slug        string
	Descripcion string
	Categoria   string
	Lugar       string
	Fecha       time.Time // fecha de celebración, no de creación
	ImagenURL   string
	Whatsapp    string
	Activo      bool
	Destacado   bool
	CreatedAt   time.Time
}
