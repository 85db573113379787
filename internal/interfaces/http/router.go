package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/auth"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/usecase"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpleoUC   *usecase.EmpleoUseCase
	EventoUC   *usecase.EventoUseCase
	NegocioUC  *usecase.NegocioUseCase
	ResenaUC   *usecase.ResenaUseCase
	ArticuloUC *usecase.ArticuloUseCase
	AuthUC     *auth.AuthUseCase
	Uploader   storage.Uploader

	SessionSecret string
	CookieName    string
	SecureCookies bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	empleoHandler := NewEmpleoHandler(deps.EmpleoUC)
	eventoHandler := NewEventoHandler(deps.EventoUC)
	resenaHandler := NewResenaHandler(deps.ResenaUC)
	negocioHandler := NewNegocioHandler(deps.NegocioUC, deps.ResenaUC)
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.SecureCookies)

	// Bolsa de empleo (público)
	empleos := api.Group("/empleos")
	empleos.Get("/", empleoHandler.Listar)
	empleos.Post("/", empleoHandler.Crear)
	empleos.Get("/:id", empleoHandler.Obtener)

	// Calendario de eventos (público)
	eventos := api.Group("/eventos")
	eventos.Get("/", eventoHandler.Listar)
	eventos.Post("/", eventoHandler.Crear)
	eventos.Get("/:id", eventoHandler.Obtener)

	// Directorio de negocios y profesionales (público)
	negocios := api.Group("/negocios")
	negocios.Get("/", negocioHandler.Listar)
	negocios.Post("/", negocioHandler.Crear)
	negocios.Get("/:id", negocioHandler.Obtener)
	negocios.Get("/:id/resenas", negocioHandler.Resenas)

	// Reseñas (envío y lectura pública de aprobadas)
	api.Get("/resenas", resenaHandler.Listar)
	api.Post("/resenas", resenaHandler.Crear)

	// Blog (público). /destacado antes que /:slug: las rutas se resuelven en orden.
	articulos := api.Group("/articulos")
	articulos.Get("/", articuloHandler.Listar)
	articulos.Get("/destacado", articuloHandler.Destacado)
	articulos.Get("/:slug", articuloHandler.ObtenerPorSlug)

	// Panel de administración
	admin := api.Group("/admin")

	// Contrato de sesión: POST /api/admin/auth inicia, DELETE la cierra.
	// /login y /logout quedan como alias.
	adminAuth := admin.Group("/auth")
	adminAuth.Post("/", authHandler.Login)
	adminAuth.Delete("/", authHandler.Logout)
	adminAuth.Post("/login", authHandler.Login)
	adminAuth.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren cookie de sesión firmada)
	protegido := admin.Group("/", SessionMiddleware(deps.SessionSecret, deps.CookieName))

	adminEmpleos := protegido.Group("/empleos")
	adminEmpleos.Get("/", empleoHandler.ListarAdmin)
	adminEmpleos.Post("/", empleoHandler.CrearAdmin)
	adminEmpleos.Get("/:id", empleoHandler.ObtenerAdmin)
	adminEmpleos.Put("/:id", empleoHandler.Actualizar)
	adminEmpleos.Delete("/:id", empleoHandler.Eliminar)

	adminEventos := protegido.Group("/eventos")
	adminEventos.Get("/", eventoHandler.ListarAdmin)
	adminEventos.Post("/", eventoHandler.CrearAdmin)
	adminEventos.Get("/:id", eventoHandler.ObtenerAdmin)
	adminEventos.Put("/:id", eventoHandler.Actualizar)
	adminEventos.Delete("/:id", eventoHandler.Eliminar)

	adminNegocios := protegido.Group("/negocios")
	adminNegocios.Get("/", negocioHandler.ListarAdmin)
	adminNegocios.Get("/:id", negocioHandler.ObtenerAdmin)
	adminNegocios.Put("/:id", negocioHandler.Actualizar)
	adminNegocios.Delete("/:id", negocioHandler.Eliminar)

	adminResenas := protegido.Group("/resenas")
	adminResenas.Get("/", resenaHandler.ListarAdmin)
	adminResenas.Put("/:id", resenaHandler.Actualizar)
	adminResenas.Delete("/:id", resenaHandler.Eliminar)

	adminArticulos := protegido.Group("/articulos")
	adminArticulos.Get("/", articuloHandler.ListarAdmin)
	adminArticulos.Post("/", articuloHandler.Crear)
	adminArticulos.Get("/:slug", articuloHandler.ObtenerAdmin)
	adminArticulos.Put("/:id", articuloHandler.Actualizar)
	adminArticulos.Delete("/:id", articuloHandler.Eliminar)

	if deps.Uploader != nil {
		uploadHandler := NewUploadHandler(deps.Uploader)
		protegido.Post("/upload", uploadHandler.Upload)
	}
}
