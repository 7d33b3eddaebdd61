package clean

import (
	"sort"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// Categories builds the category dimension from raw Rubros rows: each row's
// four hierarchy fragments are zero-padded and concatenated into the 9-digit
// composite id, the SIN RUBRO sentinel is appended, and the result is sorted
// by id. Missing fragments coerce to 0; nothing is dropped here.
func Categories(rows []source.CategoryRow) []Category {
	out := make([]Category, 0, len(rows)+1)
	for _, r := range rows {
		out = append(out, Category{
			ID:   categoryKey(intOrZero(r.Rubro), intOrZero(r.Subrubro1), intOrZero(r.Subrubro2), intOrZero(r.Subrubro3)),
			Name: strOrEmpty(r.Nombre),
		})
	}

	out = append(out, Category{ID: SinRubroID, Name: SinRubroName})

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Msg("Cleaned category dimension")

	return out
}
