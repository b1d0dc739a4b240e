package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// Receita exported for testing purposes
type Receita struct {
	DB databases.ReceitaDatabase
}

// ReceitasHandler returns all receitas, optionally filtered by usuarioId
func (h Receita) ReceitasHandler(w http.ResponseWriter, r *http.Request) {
	usuarioID, err := queryInt64(r, "usuarioId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "usuarioId inválido")
		return
	}
	dbResp, err := h.DB.Find(context.Background(), usuarioID)
	if err != nil {
		config.ErrorStatus("failed to get receitas", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}

// CreateReceitaHandler creates a receita with the next free id
func (h Receita) CreateReceitaHandler(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	created, err := h.DB.InsertOne(context.Background(), body)
	if err != nil {
		config.ErrorStatus("failed to insert receita", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateReceitaHandler shallow-merges the body over an existing receita
func (h Receita) UpdateReceitaHandler(w http.ResponseWriter, r *http.Request) {
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
		respondErro(w, http.StatusNotFound, "Receita não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update receita", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteReceitaHandler deletes a receita by id, idempotently
func (h Receita) DeleteReceitaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := h.DB.DeleteOne(context.Background(), id); err != nil {
		config.ErrorStatus("failed to delete receita", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
