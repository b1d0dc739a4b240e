package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// Registro exported for testing purposes
type Registro struct {
	DB databases.RegistroDatabase
}

// RegistrosHandler returns all registros, with optional medicamentoId
// and usuarioId filters
func (h Registro) RegistrosHandler(w http.ResponseWriter, r *http.Request) {
	medicamentoID, err := queryInt64(r, "medicamentoId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "medicamentoId inválido")
		return
	}
	usuarioID, err := queryInt64(r, "usuarioId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "usuarioId inválido")
		return
	}
	dbResp, err := h.DB.Find(context.Background(), medicamentoID, usuarioID)
	if err != nil {
		config.ErrorStatus("failed to get registros", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}

// CreateRegistroHandler records a taken dose with the next free id
func (h Registro) CreateRegistroHandler(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	created, err := h.DB.InsertOne(context.Background(), body)
	if err != nil {
		config.ErrorStatus("failed to insert registro", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateRegistroHandler shallow-merges the body over an existing registro
func (h Registro) UpdateRegistroHandler(w http.ResponseWriter, r *http.Request) {
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
		respondErro(w, http.StatusNotFound, "Registro não encontrado")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update registro", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteRegistroHandler deletes a registro by id, idempotently
func (h Registro) DeleteRegistroHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := h.DB.DeleteOne(context.Background(), id); err != nil {
		config.ErrorStatus("failed to delete registro", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
