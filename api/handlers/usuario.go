package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// Usuario exported for testing purposes
type Usuario struct {
	DB databases.UsuarioDatabase
}

// UsuariosHandler returns all usuarios
func (h Usuario) UsuariosHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, err := h.DB.Find(context.Background())
	if err != nil {
		config.ErrorStatus("failed to get usuarios", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}

// CreateUsuarioHandler creates a usuario with the next free id
func (h Usuario) CreateUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	created, err := h.DB.InsertOne(context.Background(), body)
	if err != nil {
		config.ErrorStatus("failed to insert usuario", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateUsuarioHandler shallow-merges the body over an existing usuario
func (h Usuario) UpdateUsuarioHandler(w http.ResponseWriter, r *http.Request) {
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
		respondErro(w, http.StatusNotFound, "Usuário não encontrado")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update usuario", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteUsuarioHandler deletes a usuario by id. Deleting an id that was
// already gone still answers no content.
func (h Usuario) DeleteUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := h.DB.DeleteOne(context.Background(), id); err != nil {
		config.ErrorStatus("failed to delete usuario", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PacientesPorCuidadorHandler returns the assisted patients assigned to
// the caregiver in the path
func (h Usuario) PacientesPorCuidadorHandler(w http.ResponseWriter, r *http.Request) {
	cuidadorID, err := pathID(r, "cuidadorId")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "cuidadorId inválido")
		return
	}
	zap.S().Debugf("cuidadorId: %v", cuidadorID)

	dbResp, err := h.DB.FindPacientesByCuidadorID(context.Background(), cuidadorID)
	if err != nil {
		config.ErrorStatus("failed to get pacientes by cuidador", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}
