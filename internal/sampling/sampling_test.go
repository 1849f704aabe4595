package sampling

import (
	"testing"

	"github.com/shadowmesh/mlkem-core/internal/ring"
)

func TestSampleNTTCoefficientsInRange(t *testing.T) {
	seed := make([]byte, 34)
	for i := range seed {
		seed[i] = byte(i)
	}
	p := SampleNTT(seed)
	for i, c := range p {
		if c >= ring.Q {
			t.Fatalf("SampleNTT coefficient %d = %d >= q", i, c)
		}
	}
}

func TestSampleNTTDeterministic(t *testing.T) {
	seed := make([]byte, 34)
	for i := range seed {
		seed[i] = byte(2 * i)
	}
	a := SampleNTT(seed)
	b := SampleNTT(seed)
	if a != b {
		t.Fatalf("SampleNTT is not deterministic for a fixed seed")
	}
}

func TestSampleNTTSeedSensitivity(t *testing.T) {
	seed1 := make([]byte, 34)
	seed2 := make([]byte, 34)
	seed2[0] = 1
	a := SampleNTT(seed1)
	b := SampleNTT(seed2)
	if a == b {
		t.Fatalf("SampleNTT produced identical output for different seeds")
	}
}

func TestSamplePolyCBDRange(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, 64*eta)
		for i := range buf {
			buf[i] = byte(i * 17)
		}
		p := SamplePolyCBD(eta, buf)
		for i, c := range p {
			if c >= ring.Q {
				t.Fatalf("eta=%d: SamplePolyCBD coefficient %d = %d >= q", eta, i, c)
			}
		}
	}
}

func TestSamplePolyCBDAllZeroInput(t *testing.T) {
	// All-zero randomness means x=y=0 for every coefficient, so the
	// centered binomial sample is identically zero.
	buf := make([]byte, 64*2)
	p := SamplePolyCBD(2, buf)
	for i, c := range p {
		if c != 0 {
			t.Fatalf("coefficient %d = %d, want 0 for all-zero input", i, c)
		}
	}
}

func TestPRFLength(t *testing.T) {
	for _, eta := range []int{2, 3} {
		out := PRF(eta, make([]byte, 32), 0)
		if len(out) != 64*eta {
			t.Errorf("eta=%d: len(PRF) = %d, want %d", eta, len(out), 64*eta)
		}
	}
}

func TestPRFCounterSensitivity(t *testing.T) {
	s := make([]byte, 32)
	a := PRF(2, s, 0)
	b := PRF(2, s, 1)
	if string(a) == string(b) {
		t.Fatalf("PRF produced identical output for different counters")
	}
}

func TestGenerateMatrixTransposeIsTranspose(t *testing.T) {
	rho := make([]byte, 32)
	for i := range rho {
		rho[i] = byte(i)
	}
	k := 3
	a := GenerateMatrix(rho, k, false)
	at := GenerateMatrix(rho, k, true)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if a[i][j] != at[j][i] {
				t.Fatalf("GenerateMatrix transpose mismatch at (%d,%d)", i, j)
			}
		}
	}
}
