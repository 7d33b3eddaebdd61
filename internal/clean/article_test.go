package clean

import (
	"testing"

	"github.com/elprofesional/dw-etl/internal/source"
)

func testCategories() []Category {
	return Categories([]source.CategoryRow{
		{Rubro: iptr(5), Subrubro1: iptr(2), Subrubro2: iptr(1), Subrubro3: iptr(3), Nombre: sptr("FERRETERIA")},
	})
}

func TestArticleDefaultSubstitution(t *testing.T) {
	// code=null, subcode=-1: code defaults to the sentinel, subcode to 0.
	rows := []source.ArticleRow{
		{Codigo: nil, Subcodigo: iptr(-1), Nombre: sptr("ignored")},
	}

	got := Articles(rows, testCategories())
	if len(got) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(got))
	}
	if got[0].ID != OtherArticleID {
		t.Errorf("Expected id %d, got %d", OtherArticleID, got[0].ID)
	}
	// The composed sentinel id also triggers the forced rename.
	if got[0].Name != "OTHER" {
		t.Errorf("Expected forced name OTHER, got %q", got[0].Name)
	}
}

func TestArticleForcedRenames(t *testing.T) {
	rows := []source.ArticleRow{
		{Codigo: iptr(999997), Subcodigo: iptr(0), Nombre: sptr("whatever the source says")},
		{Codigo: iptr(999998), Subcodigo: iptr(0), Nombre: nil},
	}

	got := Articles(rows, testCategories())
	if len(got) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(got))
	}
	if got[0].ID != DiscountArticleID || got[0].Name != "DISCOUNT" {
		t.Errorf("Expected DISCOUNT at %d, got %+v", DiscountArticleID, got[0])
	}
	// The rename runs before the blank-name drop, so a null source name on
	// the sentinel row survives.
	if got[1].ID != OtherArticleID || got[1].Name != "OTHER" {
		t.Errorf("Expected OTHER at %d, got %+v", OtherArticleID, got[1])
	}
}

func TestArticleCorruptRowDropped(t *testing.T) {
	rows := []source.ArticleRow{
		{Codigo: iptr(999999), Subcodigo: iptr(99), Nombre: sptr("GARBAGE")},
		{Codigo: iptr(123), Subcodigo: iptr(1), Nombre: sptr("KEPT")},
	}

	got := Articles(rows, testCategories())
	if len(got) != 1 || got[0].Name != "KEPT" {
		t.Fatalf("Expected only the good row, got %+v", got)
	}
	if got[0].ID != 12301 {
		t.Errorf("Expected id 12301, got %d", got[0].ID)
	}
}

func TestArticleCategoryClosure(t *testing.T) {
	cats := testCategories()
	rows := []source.ArticleRow{
		// Matches the cleaned category 5002013.
		{Codigo: iptr(10), Subcodigo: iptr(0), Rubro: iptr(5), Subrubro1: iptr(2), Subrubro2: iptr(1), Subrubro3: iptr(3), Nombre: sptr("RESOLVED")},
		// No such category: redirected to SIN RUBRO.
		{Codigo: iptr(11), Subcodigo: iptr(0), Rubro: iptr(88), Subrubro1: iptr(7), Nombre: sptr("REDIRECTED")},
		// Negative hierarchy fragments default to 0 before composing.
		{Codigo: iptr(12), Subcodigo: iptr(0), Rubro: iptr(-3), Nombre: sptr("NEGATIVE")},
	}

	got := Articles(rows, cats)

	catIDs := make(map[int]struct{})
	for _, c := range cats {
		catIDs[c.ID] = struct{}{}
	}
	for _, a := range got {
		if _, ok := catIDs[a.CategoryID]; !ok {
			t.Errorf("Article %d references missing category %d", a.ID, a.CategoryID)
		}
	}

	want := map[string]int{"RESOLVED": 5002013, "REDIRECTED": SinRubroID, "NEGATIVE": SinRubroID}
	for _, a := range got {
		if a.CategoryID != want[a.Name] {
			t.Errorf("Article %q category = %d, want %d", a.Name, a.CategoryID, want[a.Name])
		}
	}
}

func TestArticleBlankNamesDropped(t *testing.T) {
	rows := []source.ArticleRow{
		{Codigo: iptr(1), Subcodigo: iptr(0), Nombre: nil},
		{Codigo: iptr(2), Subcodigo: iptr(0), Nombre: sptr("   ")},
		{Codigo: iptr(3), Subcodigo: iptr(0), Nombre: sptr("NAMED")},
	}

	got := Articles(rows, testCategories())
	if len(got) != 1 || got[0].Name != "NAMED" {
		t.Fatalf("Expected only the named row, got %+v", got)
	}
}

func TestArticlesSorted(t *testing.T) {
	rows := []source.ArticleRow{
		{Codigo: iptr(500), Subcodigo: iptr(0), Nombre: sptr("C")},
		{Codigo: iptr(1), Subcodigo: iptr(0), Nombre: sptr("A")},
		{Codigo: iptr(42), Subcodigo: iptr(7), Nombre: sptr("B")},
	}

	got := Articles(rows, testCategories())
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Errorf("Rows not sorted by id: %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}
