package clean

import (
	"testing"

	"github.com/elprofesional/dw-etl/internal/source"
)

func TestCategoryCompositeKey(t *testing.T) {
	tests := []struct {
		name string
		row  source.CategoryRow
		want int
	}{
		{
			name: "padded fragments",
			row: source.CategoryRow{
				Rubro: iptr(5), Subrubro1: iptr(2), Subrubro2: iptr(1), Subrubro3: iptr(3),
				Nombre: sptr("FERRETERIA"),
			},
			// "005" + "002" + "01" + "3"
			want: 5002013,
		},
		{
			name: "missing fragments coerce to zero",
			row: source.CategoryRow{
				Rubro: iptr(12), Nombre: sptr("PINTURAS"),
			},
			want: 12000000,
		},
		{
			name: "wide fragments are not truncated",
			row: source.CategoryRow{
				Rubro: iptr(123), Subrubro1: iptr(456), Subrubro2: iptr(78), Subrubro3: iptr(9),
				Nombre: sptr("X"),
			},
			want: 123456789,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categories([]source.CategoryRow{tt.row})

			var ids []int
			for _, c := range got {
				if c.Name != SinRubroName {
					ids = append(ids, c.ID)
				}
			}
			if len(ids) != 1 || ids[0] != tt.want {
				t.Errorf("Expected id %d, got %v", tt.want, ids)
			}
		})
	}
}

func TestCategoriesNegativeFragments(t *testing.T) {
	// A negative fragment would leak its sign into the composed string,
	// producing a negative id or an id-0 collision with the sentinel.
	got := Categories([]source.CategoryRow{
		{Rubro: iptr(-5), Subrubro1: iptr(2), Subrubro2: iptr(1), Subrubro3: iptr(3), Nombre: sptr("NEG RUBRO")},
		{Rubro: iptr(5), Subrubro1: iptr(-2), Subrubro2: iptr(1), Subrubro3: iptr(3), Nombre: sptr("NEG SUBRUBRO")},
	})

	zeros := 0
	for _, c := range got {
		if c.ID < 0 {
			t.Errorf("Category %q has negative id %d", c.Name, c.ID)
		}
		if c.ID == SinRubroID {
			zeros++
			if c.Name != SinRubroName {
				t.Errorf("Id %d held by %q, want %q", SinRubroID, c.Name, SinRubroName)
			}
		}
	}
	if zeros != 1 {
		t.Errorf("Expected the sentinel as the only id-%d row, got %d rows", SinRubroID, zeros)
	}

	want := map[string]int{"NEG RUBRO": 2013, "NEG SUBRUBRO": 5000013}
	for _, c := range got {
		if c.Name == SinRubroName {
			continue
		}
		if c.ID != want[c.Name] {
			t.Errorf("Category %q id = %d, want %d", c.Name, c.ID, want[c.Name])
		}
	}
}

func TestCategoriesSentinel(t *testing.T) {
	got := Categories([]source.CategoryRow{
		{Rubro: iptr(5), Subrubro1: iptr(2), Subrubro2: iptr(1), Subrubro3: iptr(3), Nombre: sptr("A")},
		{Rubro: iptr(7), Nombre: sptr("B")},
	})

	sentinels := 0
	for _, c := range got {
		if c.Name == SinRubroName {
			sentinels++
			if c.ID != SinRubroID {
				t.Errorf("Sentinel id = %d, want %d", c.ID, SinRubroID)
			}
		}
	}
	if sentinels != 1 {
		t.Errorf("Expected exactly one %q row, got %d", SinRubroName, sentinels)
	}
}

func TestCategoriesSortedAndBounded(t *testing.T) {
	got := Categories([]source.CategoryRow{
		{Rubro: iptr(99), Subrubro1: iptr(1), Subrubro2: iptr(1), Subrubro3: iptr(1), Nombre: sptr("LAST")},
		{Rubro: iptr(1), Subrubro1: iptr(0), Subrubro2: iptr(0), Subrubro3: iptr(0), Nombre: sptr("FIRST")},
	})

	for i, c := range got {
		if c.ID < 0 || c.ID > 999999999 {
			t.Errorf("Id %d outside the 9-digit range", c.ID)
		}
		if i > 0 && got[i-1].ID > c.ID {
			t.Errorf("Rows not sorted by id: %d before %d", got[i-1].ID, c.ID)
		}
	}
	if got[0].Name != SinRubroName {
		t.Errorf("Expected sentinel first after sorting, got %q", got[0].Name)
	}
}
