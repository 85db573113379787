package moderation

// Estado estado de visibilidad de un contenido enviado por el público.
// Pendiente = invisible al público (activo=false); Activo = visible.
type Estado string

const (
	Pendiente Estado = "pendiente"
	Activo    Estado = "activo"
)

// Flags banderas de moderación ortogonales al estado. Destacado y Verificado
// pueden cambiarse en cualquier estado; solo tienen efecto de display cuando
// el contenido está Activo.
type Flags struct {
	Activo     bool
	Destacado  bool
	Verificado bool
}

// Estado devuelve el estado derivado de la bandera Activo.
func (f Flags) Estado() Estado {
	if f.Activo {
		return Activo
	}
	return Pendiente
}

// Aprobar transición Pendiente → Activo. Idempotente: aprobar dos veces no es error.
func (f *Flags) Aprobar() {
	f.Activo = true
}

// Desactivar transición Activo → Pendiente. Reversible; no borra datos dependientes.
func (f *Flags) Desactivar() {
	f.Activo = false
}

// Nuevas devuelve las banderas iniciales de un envío público: siempre pendiente,
// sin importar lo que traiga el payload.
func Nuevas() Flags {
	return Flags{}
}

// NuevasAdmin banderas iniciales de una creación hecha por un administrador,
// que puede nacer activa.
func NuevasAdmin(activo bool) Flags {
	return Flags{Activo: activo}
}
