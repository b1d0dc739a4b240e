package databases

import (
	"context"

	"github.com/lembremed/lembremed-api/models"
)

// ReceitaDatabase contains the methods to use with the receitas collection
type ReceitaDatabase interface {
	Find(ctx context.Context, usuarioID *int64) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	InsertOne(ctx context.Context, rec models.Record) (models.Record, error)
	UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error)
	DeleteOne(ctx context.Context, id int64) error
}

type receitaDatabase struct {
	col CollectionDatabase
}

// NewReceitaDatabase initializes a new instance of receita database over
// the provided storage
func NewReceitaDatabase(storage Storage) ReceitaDatabase {
	return &receitaDatabase{col: NewCollectionDatabase(storage, ColReceitas)}
}

// Find returns every receita, narrowed to one patient when usuarioID is set
func (d *receitaDatabase) Find(ctx context.Context, usuarioID *int64) ([]models.Record, error) {
	filter := map[string]interface{}{}
	if usuarioID != nil {
		filter["usuarioId"] = *usuarioID
	}
	return d.col.Find(ctx, filter)
}

func (d *receitaDatabase) FindByID(ctx context.Context, id int64) (models.Record, error) {
	return d.col.FindByID(ctx, id)
}

func (d *receitaDatabase) InsertOne(ctx context.Context, rec models.Record) (models.Record, error) {
	return d.col.InsertOne(ctx, rec)
}

func (d *receitaDatabase) UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error) {
	return d.col.UpdateOne(ctx, id, patch)
}

func (d *receitaDatabase) DeleteOne(ctx context.Context, id int64) error {
	return d.col.DeleteOne(ctx, id)
}
