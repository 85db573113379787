package entity

import "time"

// Resena una reseña de cliente sobre un Negocio (muchas a uno).
// Nace sin aprobar; solo las aprobadas cuentan para el promedio público.
type Resena struct {
	ID            string
	NegocioID     string
	NombreCliente string
	Puntuacion    int // 1..5, validado antes de persistir
	Comentario    string
	Aprobada      bool
	CreatedAt     time.Time
}

// PuntuacionValida indica si la puntuación está en el rango permitido.
func PuntuacionValida(p int) bool {
	return p >= 1 && p <= 5
}
