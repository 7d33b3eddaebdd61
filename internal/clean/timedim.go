package clean

import (
	"sort"
	"time"

	"github.com/elprofesional/dw-etl/internal/logging"
)

// Part-of-day labels, split at noon.
const (
	PartOfDayMorning   = "Mañana"
	PartOfDayAfternoon = "Tarde"
)

// Localized calendar names for the warehouse.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
}

var monthNames = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// TimeDimension derives the calendar dimension from the distinct timestamps
// of the cleaned sales headers. Pure date arithmetic; deterministic for a
// given timestamp set.
func TimeDimension(orders []Order) []TimeRow {
	distinct := make(map[time.Time]struct{}, len(orders))
	for _, o := range orders {
		distinct[o.Timestamp] = struct{}{}
	}

	out := make([]TimeRow, 0, len(distinct))
	for ts := range distinct {
		out = append(out, deriveTime(ts))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })

	logging.Debug().
		Int("orders", len(orders)).
		Int("timestamps", len(out)).
		Msg("Derived time dimension")

	return out
}

func deriveTime(ts time.Time) TimeRow {
	partOfDay := PartOfDayAfternoon
	if ts.Hour() < 12 {
		partOfDay = PartOfDayMorning
	}

	quarter := (int(ts.Month())-1)/3 + 1
	halfYear := 2
	if quarter <= 2 {
		halfYear = 1
	}

	return TimeRow{
		Timestamp:   ts,
		PartOfDay:   partOfDay,
		WeekdayName: weekdayNames[ts.Weekday()],
		DayOfMonth:  ts.Day(),
		MonthName:   monthNames[ts.Month()],
		MonthNumber: int(ts.Month()),
		Quarter:     quarter,
		HalfYear:    halfYear,
		Year:        ts.Year(),
	}
}
