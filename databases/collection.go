package databases

import (
	"context"

	"github.com/lembremed/lembremed-api/models"
)

// CollectionDatabase contains the generic operations every collection of
// the document supports. The four typed databases and the fallback
// routes all drive this one implementation, so id assignment, merge and
// delete semantics exist in exactly one place.
type CollectionDatabase interface {
	Find(ctx context.Context, filter map[string]interface{}) ([]models.Record, error)
	FindByID(ctx context.Context, id int64) (models.Record, error)
	InsertOne(ctx context.Context, rec models.Record) (models.Record, error)
	UpdateOne(ctx context.Context, id int64, patch models.Record) (models.Record, error)
	DeleteOne(ctx context.Context, id int64) error
}

type collectionDatabase struct {
	storage Storage
	name    string
}

// NewCollectionDatabase initializes a generic database over one named
// collection of the document
func NewCollectionDatabase(storage Storage, name string) CollectionDatabase {
	return &collectionDatabase{storage: storage, name: name}
}

// Find returns the records matching every filter field. A nil or empty
// filter returns the whole collection. The result is never nil so an
// empty collection encodes as [].
func (c *collectionDatabase) Find(_ context.Context, filter map[string]interface{}) ([]models.Record, error) {
	doc, err := c.storage.Load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Record, 0, len(doc[c.name]))
	for _, rec := range doc[c.name] {
		if matchesAll(rec, filter) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FindByID returns the record with the given id or ErrNotFound
func (c *collectionDatabase) FindByID(_ context.Context, id int64) (models.Record, error) {
	doc, err := c.storage.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc[c.name] {
		if rid, ok := rec.ID(); ok && rid == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// InsertOne assigns the next id, appends the record and persists the
// document. The assigned id wins over any id the client sent.
func (c *collectionDatabase) InsertOne(_ context.Context, rec models.Record) (models.Record, error) {
	inserted := rec.Merge(nil)
	err := c.storage.Mutate(func(doc Document) error {
		inserted["id"] = doc.NextID(c.name)
		doc[c.name] = append(doc[c.name], inserted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// UpdateOne shallow-merges patch over the stored record: patched fields
// overwrite, every other field is kept. Returns ErrNotFound when no
// record has the id, in which case nothing is written.
func (c *collectionDatabase) UpdateOne(_ context.Context, id int64, patch models.Record) (models.Record, error) {
	var merged models.Record
	err := c.storage.Mutate(func(doc Document) error {
		for i, rec := range doc[c.name] {
			if rid, ok := rec.ID(); ok && rid == id {
				merged = rec.Merge(patch)
				doc[c.name][i] = merged
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// DeleteOne removes the record with the given id and persists
// unconditionally. Deleting an absent id is a successful no-op.
func (c *collectionDatabase) DeleteOne(_ context.Context, id int64) error {
	return c.storage.Mutate(func(doc Document) error {
		kept := make([]models.Record, 0, len(doc[c.name]))
		for _, rec := range doc[c.name] {
			if rid, ok := rec.ID(); ok && rid == id {
				continue
			}
			kept = append(kept, rec)
		}
		doc[c.name] = kept
		return nil
	})
}

func matchesAll(rec models.Record, filter map[string]interface{}) bool {
	for field, want := range filter {
		if !rec.Matches(field, want) {
			return false
		}
	}
	return true
}
