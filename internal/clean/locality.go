package clean

// Locality ids; the enumeration order defines them.
const (
	LocalityParana  = 1
	LocalitySantaFe = 2
	LocalityOther   = 3
)

// Localities returns the static locality dimension. No source data is
// consulted; customer locality text is classified against these three rows.
func Localities() []Locality {
	return []Locality{
		{ID: LocalityParana, Name: "PARANÁ"},
		{ID: LocalitySantaFe, Name: "SANTA FE"},
		{ID: LocalityOther, Name: "OTRO"},
	}
}
