package tinyjpeg

import "testing"

// TestHuffmanTablesComplete checks the Kraft equality property: a canonical
// Huffman code built from a valid BITS/HUFFVAL spec must satisfy
// sum(2^-length) == 1 over all assigned codes, i.e. the code tree is full
// with no unused leaves and no overlapping codes.
func TestHuffmanTablesComplete(t *testing.T) {
	for idx, spec := range theHuffmanSpec {
		table := expandHuffman(spec)
		var num, den uint64 = 0, 1 << 16
		count := 0
		for sym := 0; sym < 256; sym++ {
			if table.size[sym] == 0 {
				continue
			}
			count++
			num += den >> uint(table.size[sym])
		}
		if count != len(spec.value) {
			t.Fatalf("table %d: expanded %d symbols, spec has %d", idx, count, len(spec.value))
		}
		if num != den {
			t.Fatalf("table %d: Kraft sum = %d/%d, want equality (tree not full)", idx, num, den)
		}
	}
}

// TestHuffmanTablesNoDuplicateCodes checks that no two symbols of the same
// table share both the same length and the same code value.
func TestHuffmanTablesNoDuplicateCodes(t *testing.T) {
	for idx, spec := range theHuffmanSpec {
		table := expandHuffman(spec)
		seen := map[[2]uint16]bool{}
		for sym := 0; sym < 256; sym++ {
			if table.size[sym] == 0 {
				continue
			}
			key := [2]uint16{uint16(table.size[sym]), table.code[sym]}
			if seen[key] {
				t.Fatalf("table %d: duplicate (size,code) %v", idx, key)
			}
			seen[key] = true
		}
	}
}

func TestEmitHuffmanPanicsOnUnusedSymbol(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("emitHuffman did not panic for an unused symbol")
		}
	}()
	var w bitWriter
	w.emitHuffman(&theHuffmanTables[huffIndexLumaDC], 0xff)
}

func TestVLIPositive(t *testing.T) {
	cases := []struct {
		v           int32
		nbits, bits uint32
	}{
		{1, 1, 1},
		{2, 2, 2},
		{3, 2, 3},
		{4, 3, 4},
		{7, 3, 7},
	}
	for _, c := range cases {
		nbits, bits := vli(c.v)
		if nbits != c.nbits || bits != c.bits {
			t.Errorf("vli(%d) = (%d,%d), want (%d,%d)", c.v, nbits, bits, c.nbits, c.bits)
		}
	}
}

func TestVLINegative(t *testing.T) {
	cases := []struct {
		v           int32
		nbits, bits uint32
	}{
		{-1, 1, 0},
		{-2, 2, 1},
		{-3, 2, 0},
		{-4, 3, 3},
		{-5, 3, 2},
		{-7, 3, 0},
	}
	for _, c := range cases {
		nbits, bits := vli(c.v)
		if nbits != c.nbits || bits != c.bits {
			t.Errorf("vli(%d) = (%d,%d), want (%d,%d)", c.v, nbits, bits, c.nbits, c.bits)
		}
	}
}

func TestVLIRoundTrip(t *testing.T) {
	for v := int32(-2047); v <= 2047; v++ {
		if v == 0 {
			continue
		}
		nbits, bits := vli(v)
		var decoded int32
		half := int32(1) << (nbits - 1)
		if int32(bits) < half {
			decoded = int32(bits) - (1 << nbits) + 1
		} else {
			decoded = int32(bits)
		}
		if decoded != v {
			t.Fatalf("vli(%d) round-trip = %d", v, decoded)
		}
	}
}
