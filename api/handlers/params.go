package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lembremed/lembremed-api/models"
)

// pathID parses the numeric id path variable
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// queryInt64 parses an optional numeric query parameter, nil when absent
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// queryFloat parses an optional numeric query parameter, nil when absent
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// decodeBody parses the request body into an open record
func decodeBody(r *http.Request) (models.Record, error) {
	defer r.Body.Close()
	var rec models.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return rec, nil
}

// respondErro writes the {"erro": ...} envelope the clients expect
func respondErro(w http.ResponseWriter, statusCode int, mensagem string) {
	w.WriteHeader(statusCode)
	b, _ := json.Marshal(models.ErroResponse{Erro: mensagem})
	w.Write(b)
}

// respondJSON marshals v and writes it with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		respondErro(w, http.StatusInternalServerError, "falha ao serializar resposta")
		return
	}
	w.WriteHeader(statusCode)
	w.Write(b)
}
