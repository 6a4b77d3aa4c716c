package bits

import (
	"math/rand"
	"testing"
)

func countPairsSafe(counts *Counts, a, b []byte) {
	for i := range a {
		for k := 0; k < 8; k++ {
			x := (a[i] >> (7 - k)) & 1
			y := (b[i] >> (7 - k)) & 1
			counts[k][x<<1|y]++
		}
	}
}

func TestCountPairs(t *testing.T) {
	prng := rand.New(rand.NewSource(0))

	kernels := []struct {
		scenario string
		function func(*Counts, []byte, []byte)
	}{
		{scenario: "unpack", function: countPairsUnpack},
		{scenario: "popcnt", function: countPairsPopcnt},
		{scenario: "dispatch", function: CountPairs},
	}

	for _, kernel := range kernels {
		t.Run(kernel.scenario, func(t *testing.T) {
			for _, size := range []int{0, 1, 7, 8, 9, 63, 64, 65, 511, 512, 513, 1500} {
				a := make([]byte, size)
				b := make([]byte, size)
				prng.Read(a)
				prng.Read(b)

				want, got := Counts{}, Counts{}
				countPairsSafe(&want, a, b)
				kernel.function(&got, a, b)

				if want != got {
					t.Errorf("size=%d: want=%v got=%v", size, want, got)
				}
			}
		})
	}
}

func TestCountPairsAccumulates(t *testing.T) {
	a := []byte{0x00, 0xFF}
	counts := Counts{}
	CountPairs(&counts, a, a)
	CountPairs(&counts, a, a)

	for k, c := range counts {
		if c != [4]int64{2, 0, 0, 2} {
			t.Errorf("bit %d: got=%v", k, c)
		}
	}
}

func TestCountPairsLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	CountPairs(&Counts{}, make([]byte, 2), make([]byte, 3))
}

func BenchmarkCountPairs(b *testing.B) {
	x := make([]byte, bufferSize)
	y := make([]byte, bufferSize)
	prng := rand.New(rand.NewSource(1))
	prng.Read(x)
	prng.Read(y)

	kernels := []struct {
		scenario string
		function func(*Counts, []byte, []byte)
	}{
		{scenario: "unpack", function: countPairsUnpack},
		{scenario: "popcnt", function: countPairsPopcnt},
	}

	for _, kernel := range kernels {
		b.Run(kernel.scenario, func(b *testing.B) {
			counts := Counts{}
			for i := 0; i < b.N; i++ {
				kernel.function(&counts, x, y)
			}
			b.SetBytes(2 * bufferSize)
		})
	}
}
