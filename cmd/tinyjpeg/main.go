// Command tinyjpeg reads a PNG, GIF, BMP, or JPEG image and re-encodes it as
// a baseline JPEG using the tinyjpeg package. File I/O and input decoding
// are external collaborators the core encoder never performs itself.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	tinyjpeg "github.com/dlecorfec/tinyjpeg"
)

var qualityNames = map[string]tinyjpeg.Quality{
	"highest": tinyjpeg.Highest,
	"high":    tinyjpeg.High,
	"medium":  tinyjpeg.Medium,
}

func main() {
	var (
		output  string
		quality string
		comment string
	)

	root := &cobra.Command{
		Use:   "tinyjpeg <input-image>",
		Short: "Re-encode an image as a baseline JPEG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, ok := qualityNames[quality]
			if !ok {
				return fmt.Errorf("unknown quality %q (want highest, high, or medium)", quality)
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			img, _, err := decodeAny(in)
			if err != nil {
				return fmt.Errorf("decode input: %w", err)
			}

			w, h, n, data := rasterize(img)
			var opts *tinyjpeg.Options
			if comment != "" {
				opts = &tinyjpeg.Options{Comment: comment}
			}
			out, err := tinyjpeg.Encode(w, h, n, data, q, opts)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			if output == "" {
				output = args[0] + ".jpg"
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", output, len(out))
			return nil
		},
	}

	root.Flags().StringVarP(&output, "output", "o", "", "output file path (default: <input>.jpg)")
	root.Flags().StringVarP(&quality, "quality", "q", "medium", "highest, high, or medium")
	root.Flags().StringVarP(&comment, "comment", "c", "", "COM segment text (default: tinyjpeg's standard comment)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// decodeAny tries the registered stdlib decoders (PNG, GIF, JPEG) first,
// then falls back to BMP, which the stdlib does not decode.
func decodeAny(r *os.File) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err == nil {
		return img, format, nil
	}
	if _, serr := r.Seek(0, 0); serr != nil {
		return nil, "", err
	}
	img, berr := bmp.Decode(r)
	if berr != nil {
		return nil, "", err
	}
	return img, "bmp", nil
}

// rasterize flattens img into the interleaved 8-bit raster tinyjpeg.Encode
// expects, discarding alpha into a 3-component RGB buffer (the encoder's
// 4-component path exists for callers who already have RGBA buffers on
// hand; a CLI reading arbitrary images has no alpha worth preserving
// through a format with no alpha channel).
func rasterize(img image.Image) (w, h, n int, data []byte) {
	b := img.Bounds()
	w, h, n = b.Dx(), b.Dy(), 3
	data = make([]byte, w*h*n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			base := (y*w + x) * n
			data[base+0] = byte(r >> 8)
			data[base+1] = byte(g >> 8)
			data[base+2] = byte(bl >> 8)
		}
	}
	return w, h, n, data
}
