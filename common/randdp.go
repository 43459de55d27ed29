package common

import "math"

// Default LCG parameters of the NAS benchmarks. Both are odd integers in
// (1, 2^46) as Randlc requires.
const (
	DefaultSeed       = 314159265.0
	DefaultMultiplier = 1220703125.0
)

var (
	r23, r46, t23, t46 float64
)

func init() {
	r23 = math.Pow(0.5, 23.0)
	r46 = r23 * r23
	t23 = math.Pow(2.0, 23.0)
	t46 = t23 * t23
}

/*
 * ---------------------------------------------------------------------
 *
 * Randlc returns a uniform pseudorandom number in (0, 1) from the linear
 * congruential generator
 *
 * x_{k+1} = a x_k  (mod 2^46)
 *
 * x and a must be odd integers in (1, 2^46) held in a float64. x is updated
 * in place to the new seed so repeated calls continue the sequence. The
 * arithmetic is exact on any platform with 53-bit doubles.
 *
 * ---------------------------------------------------------------------
 */
func Randlc(x *float64, a float64) float64 {
	var t1, t2, t3, t4, a1, a2, x1, x2, z float64

	t1 = r23 * a
	a1 = float64(int(t1))
	a2 = a - t23*a1

	t1 = r23 * (*x)
	x1 = float64(int(t1))
	x2 = *x - t23*x1

	t1 = a1*x2 + a2*x1
	t2 = float64(int(r23 * t1))
	z = t1 - t23*t2
	t3 = t23*z + a2*x2
	t4 = float64(int(r46 * t3))
	*x = t3 - t46*t4

	return r46 * (*x)
}

// Vranlc fills y[:n] with the next n numbers of the Randlc sequence and
// advances xSeed past them.
func Vranlc(n int, xSeed *float64, a float64, y []float64) {
	var t1, t2, t3, t4, a1, a2, x1, x2, z float64
	x := *xSeed

	t1 = r23 * a
	a1 = float64(int(t1))
	a2 = a - t23*a1

	for i := 0; i < n; i++ {
		t1 = r23 * x
		x1 = float64(int(t1))
		x2 = x - t23*x1

		t1 = a1*x2 + a2*x1
		t2 = float64(int(r23 * t1))
		z = t1 - t23*t2
		t3 = t23*z + a2*x2
		t4 = float64(int(r46 * t3))
		x = t3 - t46*t4
		y[i] = r46 * x
	}

	*xSeed = x
}

// SkipAhead returns the seed reached after n calls of Randlc starting from
// seed, in O(log n) steps. A worker that owns positions [k, ...) of a shared
// random stream starts from SkipAhead(seed, a, k).
func SkipAhead(seed, a float64, n int64) float64 {
	if n <= 0 {
		return seed
	}

	t1 := seed
	t2 := a
	kk := n

	for kk > 1 {
		ik := kk / 2
		if 2*ik == kk {
			Randlc(&t2, t2)
			kk = ik
		} else {
			Randlc(&t1, t2)
			kk = kk - 1
		}
	}
	Randlc(&t1, t2)

	return t1
}
