package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// fixed instant inside the seed medication's treatment window; the seed
// dose log sits one hour before it
var seedNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newMedicamentoHandler(t *testing.T) Medicamento {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(seedDocument), 0o644))
	storage := databases.NewStorage(&config.Config{DatabasePath: path})
	return Medicamento{
		DB:  databases.NewMedicamentoDatabase(storage),
		Now: func() time.Time { return seedNow },
	}
}

func TestMedicamentosHandlerFilters(t *testing.T) {
	a := newTestApp(t)

	w := doRequest(t, a, http.MethodGet, "/medicamentos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeRecords(t, w), 1)

	w = doRequest(t, a, http.MethodGet, "/medicamentos?usuarioId=1&receitaId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeRecords(t, w), 1)

	w = doRequest(t, a, http.MethodGet, "/medicamentos?usuarioId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeRecords(t, w))

	w = doRequest(t, a, http.MethodGet, "/medicamentos?usuarioId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMedicamentosHandlerProximasHoras(t *testing.T) {
	// seed: dose logged at 11:00Z with a 6h interval, so the next dose
	// is 17:00Z, five hours past seedNow
	tests := []struct {
		name          string
		proximasHoras string
		expectedLen   int
		expectedCode  int
	}{
		{name: "window reaches the next dose", proximasHoras: "5", expectedLen: 1, expectedCode: http.StatusOK},
		{name: "window too short", proximasHoras: "4.5", expectedLen: 0, expectedCode: http.StatusOK},
		{name: "wide window", proximasHoras: "48", expectedLen: 1, expectedCode: http.StatusOK},
		{name: "non-numeric", proximasHoras: "logo", expectedCode: http.StatusBadRequest},
		{name: "non-positive", proximasHoras: "0", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMedicamentoHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/medicamentos?proximasHoras="+tt.proximasHoras, nil)
			w := httptest.NewRecorder()
			h.MedicamentosHandler(w, req)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Len(t, decodeRecords(t, w), tt.expectedLen)
			}
		})
	}
}

func TestMedicamentoCRUD(t *testing.T) {
	a := newTestApp(t)

	w := doRequest(t, a, http.MethodPost, "/medicamentos", map[string]interface{}{
		"usuarioId":      1,
		"receitaId":      1,
		"nome":           "Amoxicilina",
		"dataInicio":     "2026-08-28T08:00:00Z",
		"dataFim":        "2026-09-04T08:00:00Z",
		"intervaloHoras": 8,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeRecord(t, w)
	id, _ := created.ID()
	assert.Equal(t, int64(2), id)

	w = doRequest(t, a, http.MethodPut, "/medicamentos/2", map[string]interface{}{"intervaloHoras": 12})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeRecord(t, w).Matches("nome", "Amoxicilina"))

	w = doRequest(t, a, http.MethodPut, "/medicamentos/42", map[string]interface{}{"nome": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Medicamento não encontrado")

	w = doRequest(t, a, http.MethodDelete, "/medicamentos/2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}
