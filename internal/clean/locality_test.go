package clean

import "testing"

func TestLocalitiesStatic(t *testing.T) {
	got := Localities()
	want := []Locality{
		{ID: 1, Name: "PARANÁ"},
		{ID: 2, Name: "SANTA FE"},
		{ID: 3, Name: "OTRO"},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d localities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Locality %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
