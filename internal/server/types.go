package server

// RenderRequest is the body of both render endpoints. Field names match
// the upstream billing system that calls this service.
type RenderRequest struct {
	XML         string `json:"xml" binding:"required"`
	CompanyID   string `json:"cod_empresa"`
	CompanyName string `json:"nome_empresa"`
}

// ErrorResponse is the uniform failure body; Code is always 0.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
