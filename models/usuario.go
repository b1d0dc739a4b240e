package models

// Valores de tipoUsuario e statusPaciente used by the caregiver lookup
const (
	TipoPaciente    = "PACIENTE"
	TipoCuidador    = "CUIDADOR"
	StatusAssistido = "ASSISTIDO"
)

// Usuario holds the known fields of an entry in the usuarios collection
type Usuario struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Senha          string `json:"senha"`
	TipoUsuario    string `json:"tipoUsuario"`
	StatusPaciente string `json:"statusPaciente"`
	CuidadorID     *int64 `json:"cuidadorId"`
}
