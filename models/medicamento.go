package models

// Medicamento holds the known fields of an entry in the medicamentos
// collection. DataInicio and DataFim bound the treatment period and stay
// strings on the wire; the schedule logic parses them.
type Medicamento struct {
	ID             int64   `json:"id"`
	UsuarioID      int64   `json:"usuarioId"`
	ReceitaID      int64   `json:"receitaId"`
	DataInicio     string  `json:"dataInicio"`
	DataFim        string  `json:"dataFim"`
	IntervaloHoras float64 `json:"intervaloHoras"`
}
