package databases

import (
	"context"

	"github.com/lembremed/lembremed-api/models"
)

// UsuarioDatabase contains the methods to use with the usuarios collection
type UsuarioDatabase interface {
	Find(ctx context.Context) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	InsertOne(ctx context.Context, rec models.Record) (models.Record, error)
	UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error)
	DeleteOne(ctx context.Context, id int64) error
	FindPacientesByCuidadorID(ctx context.Context, cuidadorID int64) ([]models.Record, error)
	Authenticate(ctx context.Context, email, senha string) (models.Record, error)
}

type usuarioDatabase struct {
	col CollectionDatabase
}

// NewUsuarioDatabase initializes a new instance of usuario database over
// the provided storage
func NewUsuarioDatabase(storage Storage) UsuarioDatabase {
	return &usuarioDatabase{col: NewCollectionDatabase(storage, ColUsuarios)}
}

func (u *usuarioDatabase) Find(ctx context.Context) ([]models.Record, error) {
	return u.col.Find(ctx, nil)
}

func (u *usuarioDatabase) FindByID(ctx context.Context, id int64) (models.Record, error) {
	return u.col.FindByID(ctx, id)
}

func (u *usuarioDatabase) InsertOne(ctx context.Context, rec models.Record) (models.Record, error) {
	return u.col.InsertOne(ctx, rec)
}

func (u *usuarioDatabase) UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error) {
	return u.col.UpdateOne(ctx, id, patch)
}

func (u *usuarioDatabase) DeleteOne(ctx context.Context, id int64) error {
	return u.col.DeleteOne(ctx, id)
}

// FindPacientesByCuidadorID returns the assisted patients assigned to a
// caregiver: tipoUsuario PACIENTE, statusPaciente ASSISTIDO and a
// matching cuidadorId, all three combined.
func (u *usuarioDatabase) FindPacientesByCuidadorID(ctx context.Context, cuidadorID int64) ([]models.Record, error) {
	return u.col.Find(ctx, map[string]interface{}{
		"tipoUsuario":    models.TipoPaciente,
		"statusPaciente": models.StatusAssistido,
		"cuidadorId":     cuidadorID,
	})
}

// Authenticate scans the usuarios for an exact, case-sensitive match on
// email and senha. On success the returned record has senha stripped.
// No session or token is involved; every request checks again.
func (u *usuarioDatabase) Authenticate(ctx context.Context, email, senha string) (models.Record, error) {
	recs, err := u.col.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		var usr models.Usuario
		if err := rec.Decode(&usr); err != nil {
			continue
		}
		if usr.Email == email && usr.Senha == senha {
			return rec.Without("senha"), nil
		}
	}
	return nil, ErrInvalidCredentials
}
