package tinyjpeg

// frameEncoder iterates 8x8 blocks over the raster, converts each to
// centered YCbCr, and runs the block coder three times per MCU: one 8x8
// block per component, 4:4:4 only, no chroma subsampling.
type frameEncoder struct {
	w, h, numComponents int
	data                []byte

	y, cb, cr blockCoder
}

// encode walks the image in row-major 8x8 blocks, writing the entropy-coded
// MCU stream to bw.
func (f *frameEncoder) encode(bw *bitWriter) {
	var yBlock, cbBlock, crBlock block
	for blockY := 0; blockY < f.h; blockY += 8 {
		for blockX := 0; blockX < f.w; blockX += 8 {
			f.loadMCU(blockY, blockX, &yBlock, &cbBlock, &crBlock)
			f.y.encode(bw, &yBlock)
			f.cb.encode(bw, &cbBlock)
			f.cr.encode(bw, &crBlock)
		}
	}
}

// loadMCU reads the 8x8 pixel region at (blockY, blockX), clamping to the
// last valid row/column for partial edge blocks, and fills the three
// component buffers with centered YCbCr samples.
func (f *frameEncoder) loadMCU(blockY, blockX int, yBlock, cbBlock, crBlock *block) {
	c := f.numComponents
	for offY := 0; offY < 8; offY++ {
		row := blockY + offY
		if row >= f.h {
			row = f.h - 1
		}
		for offX := 0; offX < 8; offX++ {
			col := blockX + offX
			if col >= f.w {
				col = f.w - 1
			}
			base := (row*f.w + col) * c
			r := float32(f.data[base+0])
			g := float32(f.data[base+1])
			b := float32(f.data[base+2])

			idx := offY*8 + offX
			yBlock[idx] = 0.299*r + 0.587*g + 0.114*b - 128
			cbBlock[idx] = -0.1687*r - 0.3313*g + 0.5*b
			crBlock[idx] = 0.5*r - 0.4187*g - 0.0813*b
		}
	}
}
