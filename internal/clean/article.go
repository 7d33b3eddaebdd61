package clean

import (
	"sort"
	"strings"

	"github.com/elprofesional/dw-etl/internal/logging"
	"github.com/elprofesional/dw-etl/internal/source"
)

// Articles builds the article dimension from raw Articulos rows. The steps
// run in a fixed order: default substitution of the key fragments, key
// composition, exclusion of the known-corrupt row, forced renames of the
// sentinel articles, redirection of unresolvable category references to
// SIN RUBRO, removal of unnamed rows, and a final sort by id.
func Articles(rows []source.ArticleRow, categories []Category) []Article {
	catIDs := make(map[int]struct{}, len(categories))
	for _, c := range categories {
		catIDs[c.ID] = struct{}{}
	}

	out := make([]Article, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		code := intOrZero(r.Codigo)
		if code <= 0 {
			code = OtherArticleCode
		}
		sub := intOrZero(r.Subcodigo)
		if sub < 0 {
			sub = 0
		}

		id := articleKey(code, sub)
		catRef := categoryKey(intOrZero(r.Rubro), intOrZero(r.Subrubro1), intOrZero(r.Subrubro2), intOrZero(r.Subrubro3))

		if id == CorruptArticleID {
			dropped++
			continue
		}

		name := strOrEmpty(r.Nombre)
		switch id {
		case DiscountArticleID:
			name = "DISCOUNT"
		case OtherArticleID:
			name = "OTHER"
		}

		if strings.TrimSpace(name) == "" {
			dropped++
			continue
		}

		out = append(out, Article{
			ID:         id,
			Name:       name,
			CategoryID: resolveOrDefault(catRef, catIDs, SinRubroID),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	logging.Debug().
		Int("in", len(rows)).
		Int("out", len(out)).
		Int("dropped", dropped).
		Msg("Cleaned article dimension")

	return out
}
