package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lembremed/lembremed-api/models"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name     string
		rec      models.Record
		expected int64
		ok       bool
	}{
		{name: "json number", rec: models.Record{"id": float64(7)}, expected: 7, ok: true},
		{name: "int", rec: models.Record{"id": 3}, expected: 3, ok: true},
		{name: "numeric string", rec: models.Record{"id": "12"}, expected: 12, ok: true},
		{name: "missing", rec: models.Record{}, ok: false},
		{name: "garbage", rec: models.Record{"id": "abc"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.rec.ID()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestRecordMerge(t *testing.T) {
	existing := models.Record{"id": float64(1), "nome": "Dipirona", "dose": "500mg"}
	patch := models.Record{"dose": "1g", "observacao": "após as refeições"}

	merged := existing.Merge(patch)

	// every key of existing not in patch is kept; patch wins on conflicts
	assert.True(t, merged.Matches("nome", "Dipirona"))
	assert.True(t, merged.Matches("dose", "1g"))
	assert.True(t, merged.Matches("observacao", "após as refeições"))

	// inputs stay untouched
	assert.True(t, existing.Matches("dose", "500mg"))
	_, inPatch := patch["nome"]
	assert.False(t, inPatch)
}

func TestRecordWithout(t *testing.T) {
	rec := models.Record{"id": float64(1), "email": "ana@example.com", "senha": "123"}

	stripped := rec.Without("senha")

	_, hasSenha := stripped["senha"]
	assert.False(t, hasSenha)
	assert.True(t, stripped.Matches("email", "ana@example.com"))
	_, stillThere := rec["senha"]
	assert.True(t, stillThere)
}

func TestRecordMatchesNumericCoercion(t *testing.T) {
	rec := models.Record{"usuarioId": float64(5), "tipoUsuario": "PACIENTE"}

	assert.True(t, rec.Matches("usuarioId", int64(5)))
	assert.True(t, rec.Matches("usuarioId", "5"))
	assert.False(t, rec.Matches("usuarioId", int64(6)))
	assert.True(t, rec.Matches("tipoUsuario", "PACIENTE"))
	assert.False(t, rec.Matches("tipoUsuario", "paciente"))
	assert.False(t, rec.Matches("inexistente", "x"))
}

func TestRecordDecode(t *testing.T) {
	rec := models.Record{
		"id":             float64(2),
		"usuarioId":      float64(9),
		"receitaId":      float64(4),
		"dataInicio":     "2026-08-27T08:00:00Z",
		"dataFim":        "2026-09-27T08:00:00Z",
		"intervaloHoras": float64(8),
		"nome":           "Amoxicilina", // unknown fields are ignored
	}

	var m models.Medicamento
	require.NoError(t, rec.Decode(&m))
	assert.Equal(t, int64(2), m.ID)
	assert.Equal(t, int64(9), m.UsuarioID)
	assert.Equal(t, int64(4), m.ReceitaID)
	assert.Equal(t, "2026-08-27T08:00:00Z", m.DataInicio)
	assert.Equal(t, float64(8), m.IntervaloHoras)
}

func TestRecordDecodeNullableCuidador(t *testing.T) {
	var comCuidador models.Usuario
	require.NoError(t, models.Record{"id": float64(1), "cuidadorId": float64(5)}.Decode(&comCuidador))
	require.NotNil(t, comCuidador.CuidadorID)
	assert.Equal(t, int64(5), *comCuidador.CuidadorID)

	var semCuidador models.Usuario
	require.NoError(t, models.Record{"id": float64(2)}.Decode(&semCuidador))
	assert.Nil(t, semCuidador.CuidadorID)
}
