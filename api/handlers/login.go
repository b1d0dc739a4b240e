package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
	"github.com/lembremed/lembremed-api/models"
)

// Login exported for testing purposes
type Login struct {
	DB databases.UsuarioDatabase
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginHandler checks a plaintext email and senha pair against the
// usuarios collection. There is no session: every login is a fresh scan.
func (h Login) LoginHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Senha == "" {
		respondErro(w, http.StatusBadRequest, "Informe email e senha.")
		return
	}

	usuario, err := h.DB.Authenticate(context.Background(), req.Email, req.Senha)
	if errors.Is(err, databases.ErrInvalidCredentials) {
		respondErro(w, http.StatusUnauthorized, "Credenciais inválidas.")
		return
	}
	if err != nil {
		config.ErrorStatus("failed to authenticate usuario", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Mensagem: "Login bem-sucedido!",
		Usuario:  usuario,
	})
}
