package dto

// SuccessResponse cuerpo de éxito de los endpoints mutadores: {"success":true}.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// OK respuesta de éxito reutilizable.
var OK = SuccessResponse{Success: true}

// ErrorResponse cuerpo de error HTTP: {"error":"mensaje"}.
// El mensaje es apto para mostrarse al usuario; los errores internos del store
// nunca viajan aquí (se responde un mensaje genérico).
type ErrorResponse struct {
	Error string `json:"error"`
}
