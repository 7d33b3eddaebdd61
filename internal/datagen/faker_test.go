package datagen

import (
	"testing"
	"time"
)

func TestNewFaker(t *testing.T) {
	f := NewFaker()
	if f == nil {
		t.Fatal("NewFaker returned nil")
	}
	if f.faker == nil {
		t.Fatal("faker field is nil")
	}
}

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.Int(0, 1000)
		v2 := f2.Int(0, 1000)
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %d != %d", v1, v2)
		}
	}
}

func TestFakerRanges(t *testing.T) {
	f := NewFaker()

	for i := 0; i < 100; i++ {
		if v := f.Int(1, 10); v < 1 || v > 10 {
			t.Errorf("Int(1, 10) out of range: %d", v)
		}
		if v := f.Price(5, 50); v < 5 || v > 50 {
			t.Errorf("Price(5, 50) out of range: %f", v)
		}
	}
}

func TestFakerDateBetween(t *testing.T) {
	f := NewFaker()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)

	for i := 0; i < 20; i++ {
		d := f.DateBetween(start, end)
		if d.Before(start) || d.After(end) {
			t.Errorf("DateBetween out of range: %v", d)
		}
	}
}

func TestFakerStrings(t *testing.T) {
	f := NewFaker()
	if f.Name() == "" {
		t.Error("Name is empty")
	}
	if f.City() == "" {
		t.Error("City is empty")
	}
	if f.ProductName() == "" {
		t.Error("ProductName is empty")
	}
}
