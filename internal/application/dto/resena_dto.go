package dto

import "time"

// CrearResenaRequest envío público de una reseña. Aprobada no se acepta del
// exterior: toda reseña nace sin aprobar.
type CrearResenaRequest struct {
	NegocioID     string `json:"negocio_id" validate:"required,uuid4"`
	NombreCliente string `json:"nombre_cliente" validate:"required,min=2,max=100"`
	Puntuacion    int    `json:"puntuacion" validate:"required,min=1,max=5"`
	Comentario    string `json:"comentario" validate:"max=2000"`
}

// ActualizarResenaRequest toggle de aprobación desde el panel.
type ActualizarResenaRequest struct {
	Aprobada *bool `json:"aprobada"`
}

// ResenaResponse salida de una reseña.
type ResenaResponse struct {
	ID            string    `json:"id"`
	NegocioID     string    `json:"negocio_id"`
	NombreCliente string    `json:"nombre_cliente"`
	Puntuacion    int       `json:"puntuacion"`
	Comentario    string    `json:"comentario,omitempty"`
	Aprobada      bool      `json:"aprobada"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResenaListResponse lista de reseñas.
type ResenaListResponse struct {
	Items []ResenaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
