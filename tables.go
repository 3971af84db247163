// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinyjpeg

// blockSize is the number of coefficients in one 8x8 DCT block.
const blockSize = 64

// unzig maps from zig-zag order to natural (row-major) order. unzig[zig] is
// the natural-order index of the zig-zag position zig.
var unzig = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// aanScaleFactor holds the AAN (Arai, Agui, Nakajima) scaled-DCT row/column
// scale factors. scalefactor[0] = 1, scalefactor[k] = cos(k*pi/16)*sqrt(2)
// for k = 1..7. These are absorbed into the reciprocal quantization tables
// instead of being divided out of the DCT output.
var aanScaleFactor = [8]float32{
	1.0,
	1.387039845,
	1.306562965,
	1.175875602,
	1.0,
	0.785694958,
	0.541196100,
	0.275899379,
}

// quantIndex identifies which of the two quantization tables (and Huffman
// table pair) a component uses.
type quantIndex int

const (
	quantIndexLuma quantIndex = iota
	quantIndexChroma
	nQuantIndex
)

// unscaledQuantLuma is the ITU-T T.81 Annex K example luminance
// quantization table, in natural (not zig-zag) order. unscaledQuantChroma
// is the "from paper" table carried over from the original tiny encoder
// this spec descends from (see DESIGN.md); its 64 entries are the luma
// table's values in a different arrangement, not the Annex K chrominance
// table.
var unscaledQuantLuma = [blockSize]byte{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var unscaledQuantChroma = [blockSize]byte{
	16, 12, 14, 14, 18, 24, 49, 72,
	11, 10, 16, 24, 40, 51, 61, 12,
	13, 17, 22, 35, 64, 92, 14, 16,
	22, 37, 55, 78, 95, 19, 24, 29,
	56, 64, 87, 98, 26, 40, 51, 68,
	81, 103, 112, 58, 57, 87, 109, 104,
	121, 100, 60, 69, 80, 103, 113, 120,
	103, 55, 56, 62, 77, 92, 101, 99,
}

// huffIndex identifies one of the four Huffman tables by (class,
// destination).
type huffIndex int

const (
	huffIndexLumaDC huffIndex = iota
	huffIndexLumaAC
	huffIndexChromaDC
	huffIndexChromaAC
	nHuffIndex
)

// huffmanSpec specifies a Huffman table in JPEG spec form (BITS, HUFFVAL),
// as used by ITU-T T.81 Annex C.
type huffmanSpec struct {
	// count[i] is the number of codes of length i+1 bits (BITS).
	count [16]byte
	// value[i] is the decoded value of the i'th codeword (HUFFVAL).
	value []byte
}

// theHuffmanSpec are the four default Huffman tables from ITU-T T.81 Annex
// K.3. This encoder does not expose tunable Huffman tables.
var theHuffmanSpec = [nHuffIndex]huffmanSpec{
	// Luma DC.
	{
		[16]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	// Luma AC.
	{
		[16]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 125},
		[]byte{
			0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
			0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
			0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
			0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
			0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
			0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
			0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
			0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
			0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
			0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
			0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
			0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
			0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
			0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
			0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
			0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
			0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
			0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
			0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
			0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	},
	// Chroma DC.
	{
		[16]byte{0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
	// Chroma AC.
	{
		[16]byte{0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 119},
		[]byte{
			0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21,
			0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
			0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91,
			0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
			0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34,
			0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
			0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38,
			0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
			0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
			0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
			0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
			0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
			0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96,
			0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
			0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4,
			0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
			0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2,
			0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
			0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9,
			0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
			0xf9, 0xfa,
		},
	},
}

// Marker bytes, second byte of the 0xff-prefixed marker code.
const (
	soiMarker  = 0xd8
	eoiMarker  = 0xd9
	app0Marker = 0xe0
	comMarker  = 0xfe
	dqtMarker  = 0xdb
	sof0Marker = 0xc0
	dhtMarker  = 0xc4
	sosMarker  = 0xda
)
