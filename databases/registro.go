package databases

import (
	"context"

	"github.com/lembremed/lembremed-api/models"
)

// RegistroDatabase contains the methods to use with the registros
// collection of recorded doses
type RegistroDatabase interface {
	Find(ctx context.Context, medicamentoID, usuarioID *int64) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	InsertOne(ctx context.Context, rec models.Record) (models.Record, error)
	UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error)
	DeleteOne(ctx context.Context, id int64) error
}

type registroDatabase struct {
	col CollectionDatabase
}

// NewRegistroDatabase initializes a new instance of registro database
// over the provided storage
func NewRegistroDatabase(storage Storage) RegistroDatabase {
	return &registroDatabase{col: NewCollectionDatabase(storage, ColRegistros)}
}

// Find returns every registro, with optional medicamentoId and usuarioId
// equality filters applied independently
func (d *registroDatabase) Find(ctx context.Context, medicamentoID, usuarioID *int64) ([]models.Record, error) {
	filter := map[string]interface{}{}
	if medicamentoID != nil {
		filter["medicamentoId"] = *medicamentoID
	}
	if usuarioID != nil {
		filter["usuarioId"] = *usuarioID
	}
	return d.col.Find(ctx, filter)
}

func (d *registroDatabase) FindByID(ctx context.Context, id int64) (models.Record, error) {
	return d.col.FindByID(ctx, id)
}

func (d *registroDatabase) InsertOne(ctx context.Context, rec models.Record) (models.Record, error) {
	return d.col.InsertOne(ctx, rec)
}

func (d *registroDatabase) UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error) {
	return d.col.UpdateOne(ctx, id, patch)
}

func (d *registroDatabase) DeleteOne(ctx context.Context, id int64) error {
	return d.col.DeleteOne(ctx, id)
}
