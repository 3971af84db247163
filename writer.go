// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tinyjpeg implements a baseline sequential DCT JPEG/JFIF encoder:
// color conversion, the AAN-scaled forward DCT, quantization and zig-zag
// reordering, DC/AC entropy coding with the Annex K canonical Huffman
// tables, and JFIF marker-segment emission. It does not decode, and it does
// not implement progressive, arithmetic, restart-marker, or chroma
// subsampling modes.
package tinyjpeg

import (
	"encoding/binary"
	"fmt"
	"log/slog"
)

// defaultComment is the COM segment payload emitted after APP0.
const defaultComment = "Created by Tiny JPEG Encoder"

// Options controls optional aspects of one Encode call beyond the required
// dimensions/quality/data. A nil *Options is equivalent to &Options{}.
type Options struct {
	// Comment overrides the COM segment payload. Empty means defaultComment.
	Comment string
}

// Encode renders an interleaved 8-bit raster to a complete baseline
// JPEG/JFIF byte stream. numComponents must be 3 (RGB) or 4 (RGBA; alpha
// is discarded). data must hold at least w*h*numComponents bytes; bytes
// beyond that are ignored. Dimensions must be in [1, 65535]. Any violation
// is reported as an InvalidArgumentError before any byte is produced.
func Encode(w, h, numComponents int, data []byte, quality Quality, opts *Options) ([]byte, error) {
	if numComponents != 3 && numComponents != 4 {
		return nil, InvalidArgumentError(fmt.Sprintf("numComponents must be 3 or 4, got %d", numComponents))
	}
	if w < 1 || w > 65535 || h < 1 || h > 65535 {
		return nil, InvalidArgumentError(fmt.Sprintf("dimensions out of range [1,65535]: %dx%d", w, h))
	}
	if want := w * h * numComponents; len(data) < want {
		return nil, InvalidArgumentError(fmt.Sprintf("raster too short: need %d bytes, got %d", want, len(data)))
	}

	comment := defaultComment
	if opts != nil && opts.Comment != "" {
		comment = opts.Comment
	}

	e := &encoder{quant: newQuantTables(quality)}
	e.writeSOI()
	e.writeAPP0()
	e.writeCOM(comment)
	e.writeDQT()
	e.writeSOF0(w, h)
	e.writeDHT()
	e.writeSOS()

	f := &frameEncoder{
		w: w, h: h, numComponents: numComponents, data: data,
		y:  blockCoder{recip: newReciprocalQuantTable(&e.quant[quantIndexLuma]), dc: &theHuffmanTables[huffIndexLumaDC], ac: &theHuffmanTables[huffIndexLumaAC]},
		cb: blockCoder{recip: newReciprocalQuantTable(&e.quant[quantIndexChroma]), dc: &theHuffmanTables[huffIndexChromaDC], ac: &theHuffmanTables[huffIndexChromaAC]},
		cr: blockCoder{recip: newReciprocalQuantTable(&e.quant[quantIndexChroma]), dc: &theHuffmanTables[huffIndexChromaDC], ac: &theHuffmanTables[huffIndexChromaAC]},
	}
	f.encode(&e.bits)
	e.bits.flushPad()
	logDebug("tinyjpeg: scan complete", slog.Int("width", w), slog.Int("height", h), slog.Int("bytes", len(e.bits.buf)))

	e.writeEOI()
	return e.bits.buf, nil
}

// encoder accumulates header and entropy-coded bytes into a single buffer
// via its embedded bitWriter: a single growable output buffer, grown
// append-only.
type encoder struct {
	bits  bitWriter
	quant quantTables
}

func (e *encoder) write(p []byte) { e.bits.buf = append(e.bits.buf, p...) }

func (e *encoder) writeMarker(marker byte) { e.write([]byte{0xff, marker}) }

func (e *encoder) writeSOI() {
	e.writeMarker(soiMarker)
	logDebug("tinyjpeg: wrote SOI")
}

func (e *encoder) writeAPP0() {
	e.writeMarker(app0Marker)
	var hdr [16]byte
	binary.BigEndian.PutUint16(hdr[0:2], 0x0010)
	copy(hdr[2:7], "JFIF\x00")
	binary.BigEndian.PutUint16(hdr[7:9], 0x0102)
	hdr[9] = 0x01
	binary.BigEndian.PutUint16(hdr[10:12], 0x0060)
	binary.BigEndian.PutUint16(hdr[12:14], 0x0060)
	hdr[14], hdr[15] = 0, 0
	e.write(hdr[:])
	logDebug("tinyjpeg: wrote APP0/JFIF")
}

func (e *encoder) writeCOM(comment string) {
	e.writeMarker(comMarker)
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(comment)+2))
	e.write(lenBuf[:])
	e.write([]byte(comment))
	logDebug("tinyjpeg: wrote COM", slog.String("comment", comment))
}

func (e *encoder) writeDQT() {
	for id, qt := range e.quant {
		e.writeMarker(dqtMarker)
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], 0x0043)
		e.write(lenBuf[:])
		e.write([]byte{byte(id)}) // precision (0: 8-bit) << 4 | id
		e.write(qt[:])
	}
	logDebug("tinyjpeg: wrote DQT", slog.Int("tables", int(nQuantIndex)))
}

func (e *encoder) writeSOF0(w, h int) {
	e.writeMarker(sof0Marker)
	var hdr [17]byte
	binary.BigEndian.PutUint16(hdr[0:2], 0x0011)
	hdr[2] = 8 // precision
	binary.BigEndian.PutUint16(hdr[3:5], uint16(h))
	binary.BigEndian.PutUint16(hdr[5:7], uint16(w))
	hdr[7] = 3 // components
	qtSel := [3]byte{0, 1, 1}
	for i := 0; i < 3; i++ {
		hdr[8+3*i] = byte(i + 1)
		hdr[9+3*i] = 0x11
		hdr[10+3*i] = qtSel[i]
	}
	e.write(hdr[:])
	logDebug("tinyjpeg: wrote SOF0", slog.Int("width", w), slog.Int("height", h))
}

func (e *encoder) writeDHT() {
	order := []huffIndex{huffIndexLumaDC, huffIndexLumaAC, huffIndexChromaDC, huffIndexChromaAC}
	for _, idx := range order {
		spec := theHuffmanSpec[idx]
		total := 0
		for _, c := range spec.count {
			total += int(c)
		}
		e.writeMarker(dhtMarker)
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(19+total))
		e.write(lenBuf[:])
		class := byte(0)
		if idx == huffIndexLumaAC || idx == huffIndexChromaAC {
			class = 1
		}
		dest := byte(0)
		if idx == huffIndexChromaDC || idx == huffIndexChromaAC {
			dest = 1
		}
		e.write([]byte{class<<4 | dest})
		e.write(spec.count[:])
		e.write(spec.value)
	}
	logDebug("tinyjpeg: wrote DHT", slog.Int("tables", int(nHuffIndex)))
}

func (e *encoder) writeSOS() {
	e.writeMarker(sosMarker)
	e.write([]byte{
		0x00, 0x0c, // length
		3,           // components
		1, 0x00,     // Y: DC0, AC0
		2, 0x11,     // Cb: DC1, AC1
		3, 0x11,     // Cr: DC1, AC1
		0, 63, 0x00, // Ss, Se, Ah|Al
	})
	logDebug("tinyjpeg: wrote SOS")
}

func (e *encoder) writeEOI() {
	e.writeMarker(eoiMarker)
	logDebug("tinyjpeg: wrote EOI")
}
