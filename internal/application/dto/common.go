package dto

// SuccessResponse envoltorio estándar de respuesta exitosa.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse envoltorio estándar de respuesta de error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK construye el envoltorio de éxito.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail construye el envoltorio de error.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
