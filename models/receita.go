package models

// Receita holds the known fields of an entry in the receitas collection
type Receita struct {
	ID        int64 `json:"id"`
	UsuarioID int64 `json:"usuarioId"`
}
