package tinyjpeg

// Quality selects one of the three coarse quantization presets this encoder
// supports. There are no tunable quality levels beyond these.
type Quality int

const (
	// Highest fills both quantization tables with 1s: no quantization loss
	// beyond DCT rounding.
	Highest Quality = iota
	// High divides the Annex K tables by 10 (integer division, zero
	// entries preserved as 1).
	High
	// Medium uses the Annex K tables as-is.
	Medium
)

// quantTables holds the two natural-order 8x8 quantization matrices
// (luma, chroma) for one encode, derived from the requested Quality.
type quantTables [nQuantIndex][blockSize]byte

// newQuantTables builds the quantization tables for q. Entries already 0
// after division are preserved as 1 so that the reciprocal table built
// below never divides by zero.
func newQuantTables(q Quality) quantTables {
	var t quantTables
	if q == Highest {
		for i := range t[quantIndexLuma] {
			t[quantIndexLuma][i] = 1
			t[quantIndexChroma][i] = 1
		}
		return t
	}
	divisor := byte(1)
	if q == High {
		divisor = 10
	}
	for i := 0; i < blockSize; i++ {
		t[quantIndexLuma][i] = divOrOne(unscaledQuantLuma[i], divisor)
		t[quantIndexChroma][i] = divOrOne(unscaledQuantChroma[i], divisor)
	}
	return t
}

func divOrOne(v, divisor byte) byte {
	r := v / divisor
	if r == 0 {
		return 1
	}
	return r
}

// reciprocalQuantTable holds, for one component, the precomputed
// 1/(8*AAN[row]*AAN[col]*qt[zigzag[i]]) factors, indexed by natural-order
// position i (matching the forward DCT's output layout).
type reciprocalQuantTable [blockSize]float32

// newReciprocalQuantTable builds the reciprocal table for quantization
// matrix qt (in natural order, as stored by quantTables), combining it with
// the AAN row/column scale factors so that quantizeAndZigZag can use a
// multiply instead of a divide in its inner loop.
func newReciprocalQuantTable(qt *[blockSize]byte) *reciprocalQuantTable {
	var r reciprocalQuantTable
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			i := y*8 + x
			r[i] = 1.0 / (8 * aanScaleFactor[x] * aanScaleFactor[y] * float32(qt[unzigInverse[i]]))
		}
	}
	return &r
}

// quantizeAndZigZag quantizes the natural-order DCT output b using the
// reciprocal table r, reordering the result into zig-zag order. The +1024
// bias implements round-half-up while remaining branch-free for both
// signs, valid because baseline 8-bit input keeps |f| < 1024.
func quantizeAndZigZag(b *block, r *reciprocalQuantTable, out *[blockSize]int32) {
	for i := 0; i < blockSize; i++ {
		f := b[i] * r[i]
		q := int32(f+1024.5) - 1024
		out[unzigInverse[i]] = q
	}
}

// unzigInverse maps a natural-order index to its zig-zag position: the
// inverse permutation of unzig, used by quantizeAndZigZag to scatter
// natural-order coefficients into zig-zag order in one pass.
var unzigInverse = func() (inv [blockSize]int) {
	for zig, nat := range unzig {
		inv[nat] = zig
	}
	return inv
}()
