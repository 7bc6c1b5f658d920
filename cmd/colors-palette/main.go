// Command colors-palette renders a palette sheet of hue wheel colors to a
// PNG file, each swatch labeled with its hex triplet.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math/rand"
	"os"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/colors"
)

func main() {
	countFlag := flag.Int("n", 8, "number of swatches")
	startFlag := flag.Float64("start", 0, "starting phase on the hue wheel")
	seedFlag := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	sizeFlag := flag.Int("swatch", 96, "swatch size in pixels")
	outFlag := flag.String("o", "palette.png", "output PNG file")
	flag.Parse()

	if *countFlag < 1 {
		fatal(fmt.Errorf("need at least one swatch, got %d", *countFlag))
	}
	if *sizeFlag < 32 {
		fatal(fmt.Errorf("swatch size %d is too small to label", *sizeFlag))
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wheel := colors.NewWheel(*startFlag, rand.New(rand.NewSource(seed)))

	size := *sizeFlag
	img := image.NewRGBA(image.Rect(0, 0, size*(*countFlag), size))

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		fatal(err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(13)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)

	for i := 0; i < *countFlag; i++ {
		c := wheel.Next()
		swatch := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(img, swatch, image.NewUniform(c), image.Point{}, draw.Src)

		// Pick a label color that is readable on the swatch.
		if _, l, _ := c.HLS(); l > 0.5 {
			ctx.SetSrc(image.Black)
		} else {
			ctx.SetSrc(image.White)
		}
		if _, err := ctx.DrawString(c.String(), freetype.Pt(i*size+8, size-10)); err != nil {
			fatal(err)
		}

		fmt.Println(c)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fatal(err)
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		fatal(err)
	}
	if err = f.Close(); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d swatches to %s\n", *countFlag, *outFlag)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
