package databases

import (
	"github.com/lembremed/lembremed-api/models"
)

// Collection names for the four sequences the document always carries.
// Any other top-level key is served by the generic fallback routes.
const (
	ColUsuarios     = "usuarios"
	ColReceitas     = "receitas"
	ColMedicamentos = "medicamentos"
	ColRegistros    = "registros"
)

// Document is the single persisted structure holding every collection
type Document map[string][]models.Record

// Has reports whether the document carries a collection under name
func (d Document) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// NextID returns 1 for an empty collection, otherwise one more than the
// largest existing id. Ids may be unsorted or non-contiguous; deleted
// ids are never reused.
func (d Document) NextID(name string) int64 {
	var max int64
	for _, rec := range d[name] {
		if id, ok := rec.ID(); ok && id > max {
			max = id
		}
	}
	return max + 1
}
