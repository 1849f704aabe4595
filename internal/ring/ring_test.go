package ring

import "testing"

// samplePoly returns a deterministic, non-trivial polynomial with every
// coefficient in [0, q) for use across tests that don't care about the
// specific values, only that round-trips are exact.
func samplePoly() Poly {
	var p Poly
	for i := range p {
		p[i] = uint16((i*7 + 3) % Q)
	}
	return p
}

func TestNTTFixedPoint(t *testing.T) {
	// f = (1, 0, 0, ..., 0): X^0 evaluates to 1 everywhere, so ntt(f) must
	// be the all-ones vector of length 256.
	var f Poly
	f[0] = 1

	got := NTT(f)
	for i, c := range got {
		if c != 1 {
			t.Fatalf("NTT(f)[%d] = %d, want 1", i, c)
		}
	}
}

func TestNTTRoundTrip(t *testing.T) {
	f := samplePoly()
	got := InverseNTT(NTT(f))
	if got != f {
		t.Fatalf("InverseNTT(NTT(f)) != f\ngot:  %v\nwant: %v", got, f)
	}
}

func TestNTTRoundTripZero(t *testing.T) {
	var f Poly
	got := InverseNTT(NTT(f))
	if got != f {
		t.Fatalf("round trip of the zero polynomial failed: %v", got)
	}
}

func TestMultiplyNTTsAgainstSchoolbook(t *testing.T) {
	f := samplePoly()
	var g Poly
	for i := range g {
		g[i] = uint16((i*13 + 11) % Q)
	}

	// Schoolbook multiplication reduced mod X^256+1, mod q.
	var want Poly
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			prod := (uint32(f[i]) * uint32(g[j])) % Q
			idx := i + j
			if idx < N {
				want[idx] = uint16((uint32(want[idx]) + prod) % Q)
			} else {
				idx -= N
				want[idx] = uint16((uint32(want[idx]) + Q - prod%Q) % Q)
			}
		}
	}

	got := InverseNTT(MultiplyNTTs(NTT(f), NTT(g)))
	if got != want {
		t.Fatalf("NTT multiplication disagrees with schoolbook reduction\ngot:  %v\nwant: %v", got, want)
	}
}

func TestAddSubInverse(t *testing.T) {
	f := samplePoly()
	var g Poly
	for i := range g {
		g[i] = uint16((i*3 + 1) % Q)
	}

	sum := Add(f, g)
	back := Sub(sum, g)
	if back != f {
		t.Fatalf("Sub(Add(f,g),g) != f")
	}
}

func TestDotProductMatchesSequentialSum(t *testing.T) {
	a := Vector{NTT(samplePoly()), NTT(samplePoly())}
	b := Vector{NTT(samplePoly()), NTT(samplePoly())}

	var want NTTPoly
	for i := range a {
		want = AddNTT(want, MultiplyNTTs(a[i], b[i]))
	}

	got := DotProduct(a, b)
	if got != want {
		t.Fatalf("DotProduct != manual accumulation")
	}
}
