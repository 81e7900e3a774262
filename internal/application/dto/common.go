package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RedirectResponse respuesta de las acciones AJAX (perfil, borrado de cuenta):
// el cliente navega a Redirect.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}
