// Command imgtool converts and transforms images from the command line.
//
// The pipeline is fixed: read, crop, resize, rotate, flip, write. Each stage
// runs only when its flag is set.
//
// Usage:
//
//	imgtool -in frame.png -out frame -format jpeg -quality 90 -width 1280
//	imgtool -in shot.jpg -rotate 90 -out rotated.jpg -overwrite
//	imgtool -in shot.jpg -info
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-media/images"
)

func main() {
	var (
		in        = flag.String("in", "", "input image path")
		out       = flag.String("out", "", "output image path (extension fixed up from -format)")
		format    = flag.String("format", "jpeg", "output format: jpeg or png")
		quality   = flag.Int("quality", images.DefaultQuality, "encode quality, 0-100")
		width     = flag.Int("width", 0, "target width; 0 derives it from -height")
		height    = flag.Int("height", 0, "target height; 0 derives it from -width")
		rotate    = flag.Float64("rotate", 0, "rotate by degrees, growing the canvas")
		flipMode  = flag.String("flip", "", "flip mode: horizontal, vertical or both")
		cropBox   = flag.String("crop", "", "crop box as x,y,w,h")
		overwrite = flag.Bool("overwrite", false, "replace the output file if it exists")
		info      = flag.Bool("info", false, "print image info and exit")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	codec := images.NewCodec()

	img, err := codec.ReadFile(*in, images.PixelFormatBGR)
	if err != nil {
		log.Fatalf("reading %s: %v", *in, err)
	}
	defer func() { img.Close() }()

	if *info {
		buf, err := os.ReadFile(*in)
		if err != nil {
			log.Fatalf("reading %s: %v", *in, err)
		}
		fmt.Printf("%s: %dx%d, %d channels, format %q\n",
			*in, img.Cols(), img.Rows(), img.Channels(), images.DetectFormat(buf))
		return
	}

	if *out == "" {
		log.Fatal("missing -out")
	}

	if *cropBox != "" {
		box, err := parseBox(*cropBox)
		if err != nil {
			log.Fatalf("bad -crop: %v", err)
		}
		if !box.IsZero() {
			cropped := images.Crop(img, box)
			img.Close()
			img = cropped
		}
	}

	if *width > 0 || *height > 0 {
		resized := images.Resize(img, *width, *height, gocv.InterpolationLinear)
		img.Close()
		img = resized
	}

	if *rotate != 0 {
		rotated := images.RotateBound(img, *rotate)
		img.Close()
		img = rotated
	}

	if *flipMode != "" {
		flipped, err := images.Flip(img, images.FlipMode(*flipMode))
		if err != nil {
			log.Fatalf("bad -flip: %v", err)
		}
		img.Close()
		img = flipped
	}

	path, err := codec.WriteFile(img, *out, images.Format(*format), images.WriteOptions{
		EncodeOptions: images.EncodeOptions{Quality: *quality},
		Overwrite:     *overwrite,
	})
	if err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", path, img.Cols(), img.Rows())
}

func parseBox(s string) (images.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return images.Box{}, fmt.Errorf("want x,y,w,h, got %q", s)
	}

	vals := make([]float32, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return images.Box{}, fmt.Errorf("bad box element %q: %w", p, err)
		}
		vals[i] = float32(v)
	}
	return images.Box{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}
