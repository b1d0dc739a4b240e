package databases

import (
	"context"
	"time"

	"github.com/lembremed/lembremed-api/models"
)

// MedicamentoDatabase contains the methods to use with the medicamentos
// collection
type MedicamentoDatabase interface {
	Find(ctx context.Context, usuarioID, receitaID *int64) ([]models.Record, error)
	FindDue(ctx context.Context, usuarioID, receitaID *int64, now time.Time, hoursAhead float64) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	InsertOne(ctx context.Context, rec models.Record) (models.Record, error)
	UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error)
	DeleteOne(ctx context.Context, id int64) error
}

type medicamentoDatabase struct {
	col  CollectionDatabase
	regs CollectionDatabase
}

// NewMedicamentoDatabase initializes a new instance of medicamento
// database over the provided storage. It also reads the registros
// collection, which the due-dose schedule depends on.
func NewMedicamentoDatabase(storage Storage) MedicamentoDatabase {
	return &medicamentoDatabase{
		col:  NewCollectionDatabase(storage, ColMedicamentos),
		regs: NewCollectionDatabase(storage, ColRegistros),
	}
}

// Find returns every medicamento, with optional usuarioId and receitaId
// equality filters applied independently
func (d *medicamentoDatabase) Find(ctx context.Context, usuarioID, receitaID *int64) ([]models.Record, error) {
	filter := map[string]interface{}{}
	if usuarioID != nil {
		filter["usuarioId"] = *usuarioID
	}
	if receitaID != nil {
		filter["receitaId"] = *receitaID
	}
	return d.col.Find(ctx, filter)
}

// FindDue narrows Find to the medications whose next scheduled dose
// falls within hoursAhead hours of now, per DueMedications.
func (d *medicamentoDatabase) FindDue(ctx context.Context, usuarioID, receitaID *int64, now time.Time, hoursAhead float64) ([]models.Record, error) {
	meds, err := d.Find(ctx, usuarioID, receitaID)
	if err != nil {
		return nil, err
	}
	regs, err := d.regs.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	return DueMedications(meds, regs, now, hoursAhead), nil
}

func (d *medicamentoDatabase) FindByID(ctx context.Context, id int64) (models.Record, error) {
	return d.col.FindByID(ctx, id)
}

func (d *medicamentoDatabase) InsertOne(ctx context.Context, rec models.Record) (models.Record, error) {
	return d.col.InsertOne(ctx, rec)
}

func (d *medicamentoDatabase) UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error) {
	return d.col.UpdateOne(ctx, id, patch)
}

func (d *medicamentoDatabase) DeleteOne(ctx context.Context, id int64) error {
	return d.col.DeleteOne(ctx, id)
}
