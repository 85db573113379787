package dto

// LoginRequest credencial del panel de administración.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse confirmación de login; el token viaja solo en la cookie.
type LoginResponse struct {
	Message string `json:"message"`
}

// UploadResponse resultado de una subida al almacenamiento de objetos.
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}
