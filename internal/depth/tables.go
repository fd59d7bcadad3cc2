package depth

// Bayer is the 8x8 ordered-dither pattern, grounded on
// dither_impl.cpp's ORDERED_DITHERS table, pre-divided by 65 and
// recentered to (-0.5, +0.5].
var Bayer = buildBayer()

const bayerPeriod = 8

var bayerRaw = [64]int{
	1, 49, 13, 61, 4, 52, 16, 64,
	33, 17, 45, 29, 36, 20, 48, 32,
	9, 57, 5, 53, 12, 60, 8, 56,
	41, 25, 37, 21, 44, 28, 40, 24,
	3, 51, 15, 63, 2, 50, 14, 62,
	35, 19, 47, 31, 34, 18, 46, 30,
	11, 59, 7, 55, 10, 58, 6, 54,
	43, 27, 39, 23, 42, 26, 38, 22,
}

func buildBayer() [bayerPeriod][bayerPeriod]float64 {
	var t [bayerPeriod][bayerPeriod]float64
	for i, v := range bayerRaw {
		t[i/bayerPeriod][i%bayerPeriod] = float64(v)/65 - 0.5
	}
	return t
}

// BayerAt returns the dither offset for (row, col) with a horizontal
// siting phase: indexed by (row mod 8, (col+phase) mod 8).
func BayerAt(row, col, phase int) float64 {
	r := ((row % bayerPeriod) + bayerPeriod) % bayerPeriod
	c := (((col+phase)%bayerPeriod)+bayerPeriod)%bayerPeriod
	return Bayer[r][c]
}

const (
	randomPeriod = 128
	randomCount  = randomPeriod * randomPeriod
)

// RandomTable is a fixed 128x128 table of dither offsets in
// (-0.5, +0.5], generated once at package init from a Mersenne
// Twister seeded deterministically, then scaled x0.5.
var RandomTable = buildRandomTable()

func buildRandomTable() [randomPeriod][randomPeriod]float64 {
	mt := newMT19937(mtDefaultSeed)
	var t [randomPeriod][randomPeriod]float64
	const maxU32 = float64(1<<32 - 1)
	for i := 0; i < randomPeriod; i++ {
		for j := 0; j < randomPeriod; j++ {
			raw := mt.Next()
			norm := float64(raw)/maxU32 - 0.5
			t[i][j] = norm * 0.5
		}
	}
	return t
}

// RandomAt returns the dither offset for (row, col); the row and
// column indices wrap at the table period. The column lookup carries a
// per-row phase (the row's own position in the table) so that once an
// image's width exceeds the table period, successive rows don't retile
// in lockstep and produce visible vertical banding.
func RandomAt(row, col int) float64 {
	r := ((row % randomPeriod) + randomPeriod) % randomPeriod
	c := (((col+r)%randomPeriod) + randomPeriod) % randomPeriod
	return RandomTable[r][c]
}
