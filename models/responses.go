package models

// HealthCheckResponse returns the health check response
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// ErroResponse is the error envelope every endpoint returns, matching the
// bodies the mobile client already expects
type ErroResponse struct {
	Erro string `json:"erro"`
}

// LoginResponse wraps the authenticated user, senha already stripped
type LoginResponse struct {
	Mensagem string `json:"mensagem"`
	Usuario  Record `json:"usuario"`
}
