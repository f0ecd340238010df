package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Cada error corresponde a una categoría de fallo; las capas superiores los envuelven con %w.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrRendering         = errors.New("fallo de renderizado")
	ErrStorage           = errors.New("fallo de persistencia")
	ErrIO                = errors.New("fallo de escritura en disco")
	ErrUnsupportedSource = errors.New("origen de datos no soportado para la plantilla")
)

// Kind devuelve la categoría del error para logs y respuestas. Vacío si no es un error de dominio.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "validation"
	case errors.Is(err, ErrUnsupportedSource), errors.Is(err, ErrRendering):
		return "rendering"
	case errors.Is(err, ErrStorage):
		return "storage"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "internal"
	}
}
