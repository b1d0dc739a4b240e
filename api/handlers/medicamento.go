package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// Medicamento exported for testing purposes
type Medicamento struct {
	DB databases.MedicamentoDatabase

	// Now is the clock the due-dose window is measured against,
	// overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// MedicamentosHandler returns all medicamentos, with optional usuarioId
// and receitaId filters. When proximasHoras is given, only the
// medications due within that many hours are returned.
func (h Medicamento) MedicamentosHandler(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := queryInt64(r, "usuarioId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "usuarioId inválido")
		return
	}
	receitaID, err := queryInt64(r, "receitaId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "receitaId inválido")
		return
	}
	proximasHoras, err := queryFloat(r, "proximasHoras")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "proximasHoras inválido")
		return
	}
	if proximasHoras != nil && *proximasHoras <= 0 {
		respondErro(w, http.StatusBadRequest, "proximasHoras inválido")
		return
	}

	if proximasHoras != nil {
		now := time.Now()
		if h.Now != nil {
			now = h.Now()
		}
		zap.S().Debugf("proximasHoras: %v", *proximasHoras)
		dbResp, err := h.DB.FindDue(context.Background(), usuarioID, receitaID, now, *proximasHoras)
		if err != nil {
			config.ErrorStatus("failed to get due medicamentos", http.StatusInternalServerError, w, err)
			return
		}
		respondJSON(w, http.StatusOK, dbResp)
		return
	}

	dbResp, err := h.DB.Find(context.Background(), usuarioID, receitaID)
	if err != nil {
		config.ErrorStatus("failed to get medicamentos", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}

// CreateMedicamentoHandler creates a medicamento with the next free id
func (h Medicamento) CreateMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	created, err := h.DB.InsertOne(context.Background(), body)
	if err != nil {
		config.ErrorStatus("failed to insert medicamento", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateMedicamentoHandler shallow-merges the body over an existing
// medicamento
func (h Medicamento) UpdateMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	updated, err := h.DB.UpdateOne(context.Background(), id, body)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Medicamento não encontrado")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update medicamento", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteMedicamentoHandler deletes a medicamento by id, idempotently
func (h Medicamento) DeleteMedicamentoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := h.DB.DeleteOne(context.Background(), id); err != nil {
		config.ErrorStatus("failed to delete medicamento", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
