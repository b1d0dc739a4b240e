package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
)

// Collection serves the fallback routes: generic CRUD over any top-level
// key of the document that has no dedicated handler. Unknown keys are a
// 404, everything else follows the same id, merge and delete semantics
// as the named collections.
type Collection struct {
	Storage databases.Storage
}

// resolve checks the collection exists in the document and returns its
// generic database
func (h Collection) resolve(r *http.Request) (databases.CollectionDatabase, error) {
	name := mux.Vars(r)["collection"]
	doc, err := h.Storage.Load()
	if err != nil {
		return nil, err
	}
	if !doc.Has(name) {
		return nil, databases.ErrNotFound
	}
	return databases.NewCollectionDatabase(h.Storage, name), nil
}

// ListHandler returns the collection, filtered by equality on any query
// parameters given
func (h Collection) ListHandler(w http.ResponseWriter, r *http.Request) {
	col, err := h.resolve(r)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Coleção não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to resolve collection", http.StatusInternalServerError, w, err)
		return
	}

	filter := map[string]interface{}{}
	for field, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[field] = values[0]
		}
	}
	dbResp, err := col.Find(context.Background(), filter)
	if err != nil {
		config.ErrorStatus("failed to get collection", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, dbResp)
}

// GetHandler returns one record by id
func (h Collection) GetHandler(w http.ResponseWriter, r *http.Request) {
	col, err := h.resolve(r)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Coleção não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to resolve collection", http.StatusInternalServerError, w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	rec, err := col.FindByID(context.Background(), id)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Registro não encontrado")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to get record", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// CreateHandler inserts a record with the next free id
func (h Collection) CreateHandler(w http.ResponseWriter, r *http.Request) {
	col, err := h.resolve(r)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Coleção não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to resolve collection", http.StatusInternalServerError, w, err)
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		respondErro(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	created, err := col.InsertOne(context.Background(), body)
	if err != nil {
		config.ErrorStatus("failed to insert record", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateHandler shallow-merges the body over an existing record
func (h Collection) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	col, err := h.resolve(r)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Coleção não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to resolve collection", http.StatusInternalServerError, w, err)
		return
	}
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
	updated, err := col.UpdateOne(context.Background(), id, body)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Registro não encontrado")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to update record", http.StatusInternalServerError, w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteHandler removes a record by id, idempotently
func (h Collection) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	col, err := h.resolve(r)
	if errors.Is(err, databases.ErrNotFound) {
		respondErro(w, http.StatusNotFound, "Coleção não encontrada")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to resolve collection", http.StatusInternalServerError, w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondErro(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := col.DeleteOne(context.Background(), id); err != nil {
		config.ErrorStatus("failed to delete record", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
