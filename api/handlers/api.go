package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/lembremed/lembremed-api/api"
	"github.com/lembremed/lembremed-api/config"
	"github.com/lembremed/lembremed-api/databases"
	"github.com/lembremed/lembremed-api/models"
)

// App stores the router and document storage, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	storage databases.Storage
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	login := Login{DB: databases.NewUsuarioDatabase(a.storage)}
	u := Usuario{DB: databases.NewUsuarioDatabase(a.storage)}
	rec := Receita{DB: databases.NewReceitaDatabase(a.storage)}
	med := Medicamento{DB: databases.NewMedicamentoDatabase(a.storage)}
	reg := Registro{DB: databases.NewRegistroDatabase(a.storage)}
	col := Collection{Storage: a.storage}

	r.Use(api.Middleware)
	r.Use(api.TimeoutMiddleware(api.RequestTimeout))

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.Handle("/login", http.HandlerFunc(login.LoginHandler)).Methods("POST")

	r.Handle("/usuarios", http.HandlerFunc(u.UsuariosHandler)).Methods("GET")
	r.Handle("/usuarios", http.HandlerFunc(u.CreateUsuarioHandler)).Methods("POST")
	r.Handle("/usuarios/{id}", http.HandlerFunc(u.UpdateUsuarioHandler)).Methods("PUT")
	r.Handle("/usuarios/{id}", http.HandlerFunc(u.DeleteUsuarioHandler)).Methods("DELETE")
	r.Handle("/pacientes-por-cuidador/{cuidadorId}", http.HandlerFunc(u.PacientesPorCuidadorHandler)).Methods("GET")

	r.Handle("/receitas", http.HandlerFunc(rec.ReceitasHandler)).Methods("GET")
	r.Handle("/receitas", http.HandlerFunc(rec.CreateReceitaHandler)).Methods("POST")
	r.Handle("/receitas/{id}", http.HandlerFunc(rec.UpdateReceitaHandler)).Methods("PUT")
	r.Handle("/receitas/{id}", http.HandlerFunc(rec.DeleteReceitaHandler)).Methods("DELETE")

	r.Handle("/medicamentos", http.HandlerFunc(med.MedicamentosHandler)).Methods("GET")
	r.Handle("/medicamentos", http.HandlerFunc(med.CreateMedicamentoHandler)).Methods("POST")
	r.Handle("/medicamentos/{id}", http.HandlerFunc(med.UpdateMedicamentoHandler)).Methods("PUT")
	r.Handle("/medicamentos/{id}", http.HandlerFunc(med.DeleteMedicamentoHandler)).Methods("DELETE")

	r.Handle("/registros", http.HandlerFunc(reg.RegistrosHandler)).Methods("GET")
	r.Handle("/registros", http.HandlerFunc(reg.CreateRegistroHandler)).Methods("POST")
	r.Handle("/registros/{id}", http.HandlerFunc(reg.UpdateRegistroHandler)).Methods("PUT")
	r.Handle("/registros/{id}", http.HandlerFunc(reg.DeleteRegistroHandler)).Methods("DELETE")

	// any other top-level key of the document gets generic CRUD, with
	// the same id and merge semantics as the named routes
	r.Handle("/{collection}", http.HandlerFunc(col.ListHandler)).Methods("GET")
	r.Handle("/{collection}", http.HandlerFunc(col.CreateHandler)).Methods("POST")
	r.Handle("/{collection}/{id}", http.HandlerFunc(col.GetHandler)).Methods("GET")
	r.Handle("/{collection}/{id}", http.HandlerFunc(col.UpdateHandler)).Methods("PUT")
	r.Handle("/{collection}/{id}", http.HandlerFunc(col.DeleteHandler)).Methods("DELETE")

	return r
}

// Initialize is invoked by main to open the document storage and create a router
func (a *App) Initialize() error {
	storage := databases.NewStorage(&a.Config)

	// fail fast when the document file is missing or corrupt
	if _, err := storage.Load(); err != nil {
		zap.S().With(err).Error("failed to open document storage")
		return err
	}
	a.storage = storage
	zap.S().Infow("lembremed-api has opened the document storage",
		"path", a.Config.DatabasePath,
	)

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
