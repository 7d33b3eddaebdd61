package pipeline

import (
	"fmt"
	"time"

	"github.com/elprofesional/dw-etl/internal/clean"
	"github.com/elprofesional/dw-etl/internal/warehouse"
)

// BuildFacts inner-joins the cleaned headers and lines on order number and
// resolves the time foreign key against the persisted time dimension. The
// line cleaner already filtered lines to surviving orders, so a line without
// a header simply falls out of the join. A timestamp missing from the
// persisted dimension is a fatal inconsistency: it was derived from the very
// headers being joined.
func BuildFacts(orders []clean.Order, lines []clean.Line, timeKeys map[time.Time]int) ([]warehouse.FactRow, error) {
	byNumber := make(map[int]clean.Order, len(orders))
	for _, o := range orders {
		byNumber[o.Number] = o
	}

	facts := make([]warehouse.FactRow, 0, len(lines))
	for _, l := range lines {
		o, ok := byNumber[l.OrderNumber]
		if !ok {
			continue
		}

		timeID, ok := timeKeys[o.Timestamp.UTC()]
		if !ok {
			return nil, fmt.Errorf("timestamp %s of order %d missing from persisted time dimension",
				o.Timestamp.Format(time.DateTime), o.Number)
		}

		facts = append(facts, warehouse.FactRow{
			TimeID:           timeID,
			ArticleID:        l.ArticleID,
			Account:          o.Account,
			VendorCode:       o.VendorCode,
			OrderNumber:      l.OrderNumber,
			Quantity:         l.Quantity,
			UnitPrice:        l.UnitPrice,
			UnitPriceWithTax: l.UnitPriceWithTax,
			Total:            l.Total,
		})
	}
	return facts, nil
}
