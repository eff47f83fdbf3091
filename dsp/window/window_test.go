package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateShapes(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeTukey, TypeCosine} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 65)
			if len(w) != 65 {
				t.Fatalf("len=%d, want 65", len(w))
			}
			for i, v := range w {
				if math.IsNaN(v) || v < 0 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
			if math.Abs(w[32]-1) > 1e-12 {
				t.Fatalf("centre = %v, want 1", w[32])
			}
		})
	}
}

func TestTukeyEdges(t *testing.T) {
	w := Generate(TypeTukey, 101, WithAlpha(0.2))
	if w[0] != 0 || w[100] != 0 {
		t.Fatalf("edges = %v, %v, want 0", w[0], w[100])
	}
	for i := 10; i <= 90; i++ {
		if w[i] != 1 {
			t.Fatalf("w[%d] = %v, want flat top", i, w[i])
		}
	}
}

func TestTukeyAlphaZeroIsRectangular(t *testing.T) {
	w := Generate(TypeTukey, 8, WithAlpha(0))
	for i, v := range w {
		if v != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, v)
		}
	}
}

func TestWithAlphaIgnoresOutOfRange(t *testing.T) {
	got := Generate(TypeTukey, 21, WithAlpha(1.5))
	want := Generate(TypeTukey, 21)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("w[%d] = %v, want default alpha %v", i, got[i], want[i])
		}
	}
}

func TestSlopeLeftKeepsTail(t *testing.T) {
	w := Generate(TypeHann, 11, WithSlope(SlopeLeft))
	if w[0] != 0 {
		t.Fatalf("w[0] = %v, want 0", w[0])
	}
	for i := 6; i < 11; i++ {
		if w[i] != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, w[i])
		}
	}
}

func TestApplyInPlace(t *testing.T) {
	buf := []float64{2, 2, 2}
	Apply(TypeHann, buf)
	if buf[0] != 0 || math.Abs(buf[1]-2) > 1e-12 || buf[2] != 0 {
		t.Fatalf("unexpected result: %v", buf)
	}
	if err := ApplyCoefficientsInPlace(buf, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType("tukey")
	if !ok || typ != TypeTukey {
		t.Fatalf("ParseType(tukey) = %v, %v", typ, ok)
	}
	if _, ok := ParseType("kaiser"); ok {
		t.Fatal("unexpected match for unsupported window")
	}
}

func TestParseSlope(t *testing.T) {
	for _, s := range []Slope{SlopeSymmetric, SlopeLeft, SlopeRight} {
		got, ok := ParseSlope(s.String())
		if !ok || got != s {
			t.Fatalf("ParseSlope(%q) = %v, %v", s, got, ok)
		}
	}
	if _, ok := ParseSlope("middle"); ok {
		t.Fatal("unexpected match for unknown slope")
	}
}
