package vector

import (
	"math"
	"reflect"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	in := []float32{1, -0.5, 0, 3.25}
	b := Encode(in)
	if len(b) != 16 {
		t.Fatalf("Encode length = %d, want 16", len(b))
	}
	out, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("Decode(Encode(%v)) = %v", in, out)
	}

	if b := Encode(nil); b != nil {
		t.Fatalf("Encode(nil) = %v, want nil", b)
	}
	if _, err := Decode([]byte{1, 2, 3}); err == nil {
		t.Fatalf("Decode of odd-length blob should fail")
	}
}

func TestCosineSimilarity(t *testing.T) {
	// Orthogonal -> 0, identical -> 1, opposite -> -1.
	if sim, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1}); err != nil || sim != 0 {
		t.Fatalf("orthogonal = %v, %v; want 0, nil", sim, err)
	}
	if sim, err := CosineSimilarity([]float32{1, 0}, []float32{2, 0}); err != nil || math.Abs(sim-1) > 1e-12 {
		t.Fatalf("parallel = %v, %v; want 1, nil", sim, err)
	}
	if sim, err := CosineSimilarity([]float32{1, 0}, []float32{-1, 0}); err != nil || math.Abs(sim+1) > 1e-12 {
		t.Fatalf("opposite = %v, %v; want -1, nil", sim, err)
	}

	// Zero magnitude is defined as similarity 0, not a failure.
	if sim, err := CosineSimilarity([]float32{0, 0}, []float32{1, 0}); err != nil || sim != 0 {
		t.Fatalf("zero magnitude = %v, %v; want 0, nil", sim, err)
	}

	if _, err := CosineSimilarity([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatalf("dimension mismatch should fail")
	}
}

func TestL2Distance(t *testing.T) {
	d, err := L2Distance([]float32{0, 0}, []float32{3, 4})
	if err != nil {
		t.Fatalf("L2Distance failed: %v", err)
	}
	if d != 5 {
		t.Fatalf("L2Distance = %v, want 5", d)
	}
	if _, err := L2Distance([]float32{1}, []float32{1, 2}); err == nil {
		t.Fatalf("dimension mismatch should fail")
	}
}
