package databases

import (
	"time"

	"github.com/lembremed/lembremed-api/models"
)

// horarioLayouts are the timestamp shapes accepted for dataInicio,
// dataFim and horario fields, most specific first.
var horarioLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DueMedications returns the medications whose next scheduled dose falls
// at or before now + hoursAhead hours. Pure function: the inputs are not
// modified and the result preserves the input order.
//
// A medication counts only while now is inside [dataInicio, dataFim],
// both ends inclusive. The next dose is intervaloHoras after the latest
// recorded dose for that medication, or after dataInicio when no dose
// was ever recorded. An already-overdue next dose is still due within
// any window. Records with unparseable timestamps are skipped rather
// than failing the whole query.
func DueMedications(meds, regs []models.Record, now time.Time, hoursAhead float64) []models.Record {
	windowEnd := now.Add(durationHours(hoursAhead))
	due := make([]models.Record, 0, len(meds))
	for _, rec := range meds {
		var med models.Medicamento
		if err := rec.Decode(&med); err != nil {
			continue
		}
		inicio, err := parseHorario(med.DataInicio)
		if err != nil {
			continue
		}
		fim, err := parseHorario(med.DataFim)
		if err != nil {
			continue
		}
		if now.Before(inicio) || now.After(fim) {
			continue
		}

		baseline, ok := latestDose(regs, med.ID)
		if !ok {
			baseline = inicio
		}
		nextDose := baseline.Add(durationHours(med.IntervaloHoras))
		if !nextDose.After(windowEnd) {
			due = append(due, rec)
		}
	}
	return due
}

// latestDose finds the horario of the most recent registro for the
// medication. Equal timestamps are broken by the highest registro id,
// the latest insertion under this store's monotonic ids.
func latestDose(regs []models.Record, medicamentoID int64) (time.Time, bool) {
	var (
		best   time.Time
		bestID int64
		found  bool
	)
	for _, rec := range regs {
		var reg models.Registro
		if err := rec.Decode(&reg); err != nil {
			continue
		}
		if reg.MedicamentoID != medicamentoID {
			continue
		}
		t, err := parseHorario(reg.Horario)
		if err != nil {
			continue
		}
		if !found || t.After(best) || (t.Equal(best) && reg.ID > bestID) {
			best, bestID, found = t, reg.ID, true
		}
	}
	return best, found
}

func parseHorario(s string) (time.Time, error) {
	var err error
	for _, layout := range horarioLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func durationHours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
