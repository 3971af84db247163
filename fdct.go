package tinyjpeg

// block is a 64-entry 8x8 block of samples in natural (row-major) order.
type block [blockSize]float32

// forwardDCT performs the Arai-Agui-Nakajima (AAN) scaled forward DCT on b
// in place, row pass then column pass. The output coefficients are not
// normalized to a canonical DCT scale; the missing scale factors are
// folded into the reciprocal quantization table built by
// newReciprocalQuantTable, so this function alone does not produce a
// properly scaled result.
//
// This is the classic Arai/Agui/Nakajima figure 4-8 factoring, the same
// one Thomas G. Lane's libjpeg reference code uses.
func forwardDCT(b *block) {
	// Pass 1: rows.
	for i := 0; i < blockSize; i += 8 {
		tmp0 := b[i+0] + b[i+7]
		tmp7 := b[i+0] - b[i+7]
		tmp1 := b[i+1] + b[i+6]
		tmp6 := b[i+1] - b[i+6]
		tmp2 := b[i+2] + b[i+5]
		tmp5 := b[i+2] - b[i+5]
		tmp3 := b[i+3] + b[i+4]
		tmp4 := b[i+3] - b[i+4]

		// Even part.
		tmp10 := tmp0 + tmp3
		tmp13 := tmp0 - tmp3
		tmp11 := tmp1 + tmp2
		tmp12 := tmp1 - tmp2

		b[i+0] = tmp10 + tmp11
		b[i+4] = tmp10 - tmp11

		z1 := (tmp12 + tmp13) * 0.707106781
		b[i+2] = tmp13 + z1
		b[i+6] = tmp13 - z1

		// Odd part. The rotator is arranged to avoid extra negations.
		tmp10 = tmp4 + tmp5
		tmp11 = tmp5 + tmp6
		tmp12 = tmp6 + tmp7

		z5 := (tmp10 - tmp12) * 0.382683433
		z2 := 0.541196100*tmp10 + z5
		z4 := 1.306562965*tmp12 + z5
		z3 := tmp11 * 0.707106781

		z11 := tmp7 + z3
		z13 := tmp7 - z3

		b[i+5] = z13 + z2
		b[i+3] = z13 - z2
		b[i+1] = z11 + z4
		b[i+7] = z11 - z4
	}

	// Pass 2: columns.
	for i := 0; i < 8; i++ {
		tmp0 := b[i+8*0] + b[i+8*7]
		tmp7 := b[i+8*0] - b[i+8*7]
		tmp1 := b[i+8*1] + b[i+8*6]
		tmp6 := b[i+8*1] - b[i+8*6]
		tmp2 := b[i+8*2] + b[i+8*5]
		tmp5 := b[i+8*2] - b[i+8*5]
		tmp3 := b[i+8*3] + b[i+8*4]
		tmp4 := b[i+8*3] - b[i+8*4]

		tmp10 := tmp0 + tmp3
		tmp13 := tmp0 - tmp3
		tmp11 := tmp1 + tmp2
		tmp12 := tmp1 - tmp2

		b[i+8*0] = tmp10 + tmp11
		b[i+8*4] = tmp10 - tmp11

		z1 := (tmp12 + tmp13) * 0.707106781
		b[i+8*2] = tmp13 + z1
		b[i+8*6] = tmp13 - z1

		tmp10 = tmp4 + tmp5
		tmp11 = tmp5 + tmp6
		tmp12 = tmp6 + tmp7

		z5 := (tmp10 - tmp12) * 0.382683433
		z2 := 0.541196100*tmp10 + z5
		z4 := 1.306562965*tmp12 + z5
		z3 := tmp11 * 0.707106781

		z11 := tmp7 + z3
		z13 := tmp7 - z3

		b[i+8*5] = z13 + z2
		b[i+8*3] = z13 - z2
		b[i+8*1] = z11 + z4
		b[i+8*7] = z11 - z4
	}
}
