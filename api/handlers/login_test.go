package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedErro   string
	}{
		{
			name:           "valid credentials",
			body:           map[string]string{"email": "ana@example.com", "senha": "123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong senha",
			body:           map[string]string{"email": "ana@example.com", "senha": "errada"},
			expectedStatus: http.StatusUnauthorized,
			expectedErro:   "Credenciais inválidas.",
		},
		{
			name:           "unknown email",
			body:           map[string]string{"email": "zoe@example.com", "senha": "123"},
			expectedStatus: http.StatusUnauthorized,
			expectedErro:   "Credenciais inválidas.",
		},
		{
			name:           "missing senha",
			body:           map[string]string{"email": "ana@example.com"},
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "Informe email e senha.",
		},
		{
			name:           "missing email",
			body:           map[string]string{"senha": "123"},
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "Informe email e senha.",
		},
		{
			name:           "empty body",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "Informe email e senha.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)

			w := doRequest(t, a, http.MethodPost, "/login", tt.body)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedErro != "" {
				assert.Contains(t, w.Body.String(), tt.expectedErro)
				return
			}

			resp := decodeRecord(t, w)
			assert.Equal(t, "Login bem-sucedido!", resp["mensagem"])

			usuario, ok := resp["usuario"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "ana@example.com", usuario["email"])
			assert.Equal(t, "Ana", usuario["nome"], "pass-through fields survive")
			_, hasSenha := usuario["senha"]
			assert.False(t, hasSenha, "senha must be stripped from the response")
		})
	}
}
