package models

// Registro holds the known fields of an entry in the registros
// collection, one per recorded dose
type Registro struct {
	ID            int64  `json:"id"`
	MedicamentoID int64  `json:"medicamentoId"`
	UsuarioID     int64  `json:"usuarioId"`
	Horario       string `json:"horario"`
}
