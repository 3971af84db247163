package tinyjpeg

// huffmanTable is the expanded form of a huffmanSpec: two parallel arrays
// indexed by symbol value, giving the code length (0 if the symbol is
// unused) and the code bits.
type huffmanTable struct {
	size [256]uint8
	code [256]uint16
}

// expandHuffman derives a huffmanTable from its JPEG spec form (BITS,
// HUFFVAL) following the canonical three-step procedure:
//  1. emit HUFFSIZE: length L exactly count[L-1] times, for L = 1..16,
//     terminated by a 0;
//  2. derive HUFFCODE from HUFFSIZE by the standard canonical-code
//     construction;
//  3. scatter (HUFFCODE, HUFFSIZE) into the output arrays indexed by
//     HUFFVAL.
func expandHuffman(spec huffmanSpec) huffmanTable {
	var huffSize [257]uint8
	k := 0
	for length := 0; length < 16; length++ {
		for n := byte(0); n < spec.count[length]; n++ {
			huffSize[k] = uint8(length + 1)
			k++
		}
	}
	total := k
	huffSize[k] = 0

	var huffCode [256]uint16
	code, size, k := uint16(0), huffSize[0], 0
	for huffSize[k] != 0 {
		for huffSize[k] == size {
			huffCode[k] = code
			code++
			k++
		}
		for huffSize[k] != 0 && huffSize[k] != size {
			code <<= 1
			size++
		}
	}

	var t huffmanTable
	for k := 0; k < total; k++ {
		v := spec.value[k]
		t.code[v] = huffCode[k]
		t.size[v] = huffSize[k]
	}
	return t
}

// theHuffmanTables are the compiled forms of theHuffmanSpec, built once at
// package init since the default tables never change across encodes; this
// encoder does not expose tunable Huffman tables.
var theHuffmanTables [nHuffIndex]huffmanTable

func init() {
	for i, spec := range theHuffmanSpec {
		theHuffmanTables[i] = expandHuffman(spec)
	}
}

// emitHuffman writes the Huffman code for symbol to w using table h. It is
// a programming error to call this for a symbol with size 0.
func (w *bitWriter) emitHuffman(h *huffmanTable, symbol byte) {
	size := h.size[symbol]
	if size == 0 {
		panic("tinyjpeg: emitting unused Huffman symbol")
	}
	w.append(uint32(size), uint32(h.code[symbol]))
}

// vli maps a nonzero signed coefficient to (nbits, bits) per the JPEG
// variable-length integer / category encoding. v must be nonzero; DC-zero
// and EOB use dedicated Huffman symbols instead.
func vli(v int32) (nbits uint32, bits uint32) {
	a := v
	if a < 0 {
		a = -a
	}
	for n := a; n != 0; n >>= 1 {
		nbits++
	}
	if v < 0 {
		v--
	}
	bits = uint32(v) & ((1 << nbits) - 1)
	return nbits, bits
}
