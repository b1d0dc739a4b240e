package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lembremed/lembremed-api/databases"
	"github.com/lembremed/lembremed-api/models"
)

func TestCollectionInsertAssignsIDs(t *testing.T) {
	storage := newTestStorage(t, `{"usuarios": [], "receitas": [], "medicamentos": [], "registros": []}`)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	first, err := col.InsertOne(context.Background(), models.Record{"usuarioId": 1})
	require.NoError(t, err)
	firstID, ok := first.ID()
	require.True(t, ok)
	assert.Equal(t, int64(1), firstID)

	// a client-supplied id never wins over the assigned one
	second, err := col.InsertOne(context.Background(), models.Record{"id": 99, "usuarioId": 2})
	require.NoError(t, err)
	secondID, _ := second.ID()
	assert.Equal(t, int64(2), secondID)

	all, err := col.Find(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCollectionIDsNotReusedAfterDelete(t *testing.T) {
	storage := newTestStorage(t, `{"usuarios": [], "receitas": [{"id": 1}, {"id": 2}], "medicamentos": [], "registros": []}`)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	require.NoError(t, col.DeleteOne(context.Background(), 2))

	created, err := col.InsertOne(context.Background(), models.Record{})
	require.NoError(t, err)
	id, _ := created.ID()
	assert.Equal(t, int64(3), id, "deleted ids must not be reused")
}

func TestCollectionUpdateMerges(t *testing.T) {
	storage := newTestStorage(t, seedDocument)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	updated, err := col.UpdateOne(context.Background(), 1, models.Record{"medico": "Dr. Lima", "crm": "4321"})
	require.NoError(t, err)

	// patched fields overwrite, untouched fields survive
	assert.True(t, updated.Matches("medico", "Dr. Lima"))
	assert.True(t, updated.Matches("crm", "4321"))
	assert.True(t, updated.Matches("usuarioId", 1))

	stored, err := col.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, stored.Matches("medico", "Dr. Lima"))
}

func TestCollectionUpdateMissingID(t *testing.T) {
	storage := newTestStorage(t, seedDocument)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	_, err := col.UpdateOne(context.Background(), 999, models.Record{"medico": "Dr. Lima"})
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestCollectionDeleteIsIdempotent(t *testing.T) {
	storage := newTestStorage(t, seedDocument)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	require.NoError(t, col.DeleteOne(context.Background(), 2))
	require.NoError(t, col.DeleteOne(context.Background(), 2), "second delete still succeeds")

	all, err := col.Find(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCollectionFindFilters(t *testing.T) {
	storage := newTestStorage(t, seedDocument)
	col := databases.NewCollectionDatabase(storage, databases.ColReceitas)

	// numeric filter values match JSON numbers regardless of type
	got, err := col.Find(context.Background(), map[string]interface{}{"usuarioId": int64(1)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	id, _ := got[0].ID()
	assert.Equal(t, int64(1), id)

	// string filter values coming off a query string match too
	got, err = col.Find(context.Background(), map[string]interface{}{"usuarioId": "2"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = col.Find(context.Background(), map[string]interface{}{"usuarioId": 7})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollectionFindByIDDanglingReference(t *testing.T) {
	storage := newTestStorage(t, seedDocument)
	col := databases.NewCollectionDatabase(storage, databases.ColUsuarios)

	_, err := col.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}
