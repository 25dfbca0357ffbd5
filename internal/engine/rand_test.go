package engine

import "testing"

func TestStreamDeterminism(t *testing.T) {
	a := NewStream(42)
	b := NewStream(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d diverged: %v vs %v", i, va, vb)
		}
	}
}

func TestStreamRange(t *testing.T) {
	r := NewStream(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestStreamSeedsDiffer(t *testing.T) {
	a := NewStream(1)
	b := NewStream(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical first 10 draws")
	}
}

func TestStreamIntn(t *testing.T) {
	r := NewStream(99)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Fatalf("Intn(6) only produced %d distinct values in 1000 draws", len(seen))
	}
}
