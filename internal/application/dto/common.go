package dto

// ErrorResponse cuerpo de error HTTP. Code es la categoría interna (validation, not_found, rendering, storage, io).
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
