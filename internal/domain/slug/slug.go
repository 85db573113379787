package slug

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	noPermitidos = regexp.MustCompile(`[^a-z0-9\s-]`)
	espacios     = regexp.MustCompile(`\s+`)
	guiones      = regexp.MustCompile(`-+`)
)

// Generar deriva un slug apto para URL a partir de un nombre visible:
// minúsculas, sin diacríticos (é → e), solo [a-z0-9-], espacios y rachas de
// guiones colapsados a un guion, sin guiones en los extremos.
func Generar(nombre string) string {
	s := strings.ToLower(nombre)

	// Descomponer (NFD) y descartar marcas diacríticas combinantes
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if limpio, _, err := transform.String(t, s); err == nil {
		s = limpio
	}

	s = noPermitidos.ReplaceAllString(s, "")
	s = espacios.ReplaceAllString(s, "-")
	s = guiones.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Estrategia política de resolución de colisiones de slug.
type Estrategia int

const (
	// Ninguna no verifica unicidad: el slug base se usa tal cual
	// (la tabla puede aún rechazar el duplicado con su índice único).
	Ninguna Estrategia = iota
	// VerificarConTimestamp consulta si el slug existe y, solo en caso de
	// colisión, añade el timestamp en milisegundos.
	VerificarConTimestamp
	// SufijoBase36 añade siempre el timestamp en base 36, sin consulta previa.
	SufijoBase36
)

// Verificador puerto de consulta de existencia de un slug en su tabla.
type Verificador interface {
	ExisteSlug(ctx context.Context, slug string) (bool, error)
}

// VerificadorFunc adaptador función → Verificador.
type VerificadorFunc func(ctx context.Context, slug string) (bool, error)

// ExisteSlug implementa Verificador.
func (f VerificadorFunc) ExisteSlug(ctx context.Context, slug string) (bool, error) {
	return f(ctx, slug)
}

// Resolver genera el slug de nombre y resuelve colisiones según la estrategia.
// Todos los tipos de contenido pasan por aquí; cambia solo la estrategia
// configurada. Un nombre que queda vacío tras la normalización se rechaza con
// ErrInvalidInput en lugar de persistir un slug vacío.
func Resolver(ctx context.Context, nombre string, e Estrategia, v Verificador) (string, error) {
	base := Generar(nombre)
	if base == "" {
		return "", domain.ErrInvalidInput
	}

	switch e {
	case Ninguna:
		return base, nil
	case VerificarConTimestamp:
		if v == nil {
			return base, nil
		}
		existe, err := v.ExisteSlug(ctx, base)
		if err != nil {
			return "", err
		}
		if !existe {
			return base, nil
		}
		return base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10), nil
	case SufijoBase36:
		return base + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36), nil
	default:
		return base, nil
	}
}
