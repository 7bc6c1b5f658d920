package colors

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"regexp"
	"strconv"
)

// Model converts any [color.Color] to a [Color].
var Model color.Model = color.ModelFunc(model)

// DefaultHex is the hex triplet used by [Default].
const DefaultHex = "#333333"

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// Color is a single color value. A Color is immutable once constructed: the
// RGB channels are the canonical representation and the hex triplet and the
// HSV, HLS and YIQ triples are derived from them in full at construction.
// Construct a Color with one of the From functions, [Default], [Random] or
// [Model]; the zero value is not a valid Color.
//
// Color implements [color.Color] with full opacity.
type Color struct {
	rgb      [3]int
	fraction [3]float64
	hex      string
	hsv      [3]float64
	hls      [3]float64
	yiq      [3]float64
}

// derive builds a Color from in-range RGB channels, computing all derived
// representations. This is the single construction path for all factories
// and operations.
func derive(r, g, b int) Color {
	c := Color{
		rgb: [3]int{r, g, b},
		fraction: [3]float64{
			float64(r) / 255,
			float64(g) / 255,
			float64(b) / 255,
		},
		hex: fmt.Sprintf("%02x%02x%02x", r, g, b),
	}
	c.hsv[0], c.hsv[1], c.hsv[2] = rgbToHSV(c.fraction[0], c.fraction[1], c.fraction[2])
	c.hls[0], c.hls[1], c.hls[2] = rgbToHLS(c.fraction[0], c.fraction[1], c.fraction[2])
	c.yiq[0], c.yiq[1], c.yiq[2] = rgbToYIQ(c.fraction[0], c.fraction[1], c.fraction[2])
	return c
}

// channel scales a fraction in [0, 1] to an integer channel in [0, 255],
// rounding half up.
func channel(v float64) int {
	return int(math.Floor(v*255 + 0.5))
}

// FromHex builds a Color from a hex triplet like "#336699" or "336699".
// The leading "#" is optional and digits may use either case.
func FromHex(s string) (Color, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, &ValidationError{Arg: "hex", Reason: fmt.Sprintf("%q is not a hex triplet", s)}
	}

	var rgb [3]int
	for i, group := range m[1:] {
		v, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			return Color{}, &ValidationError{Arg: "hex", Reason: err.Error()}
		}
		rgb[i] = int(v)
	}
	return derive(rgb[0], rgb[1], rgb[2]), nil
}

// FromRGB builds a Color from red, green and blue channels in [0, 255].
func FromRGB(r, g, b int) (Color, error) {
	for i, v := range [3]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, &ValidationError{
				Arg:    "rgb",
				Reason: fmt.Sprintf("%s channel %d is outside [0, 255]", channelName(i), v),
			}
		}
	}
	return derive(r, g, b), nil
}

// FromHSV builds a Color from hue, saturation and value. Saturation and
// value must lie in [0, 1]; hue is circular and is wrapped into [0, 1).
func FromHSV(h, s, v float64) (Color, error) {
	if s < 0 || s > 1 {
		return Color{}, &ValidationError{Arg: "hsv", Reason: fmt.Sprintf("saturation %v is outside [0, 1]", s)}
	}
	if v < 0 || v > 1 {
		return Color{}, &ValidationError{Arg: "hsv", Reason: fmt.Sprintf("value %v is outside [0, 1]", v)}
	}

	r, g, b := hsvToRGB(wrap(h), s, v)
	return derive(channel(r), channel(g), channel(b)), nil
}

// FromHLS builds a Color from hue, lightness and saturation. Lightness and
// saturation must lie in [0, 1]; hue is circular and is wrapped into [0, 1).
func FromHLS(h, l, s float64) (Color, error) {
	if l < 0 || l > 1 {
		return Color{}, &ValidationError{Arg: "hls", Reason: fmt.Sprintf("lightness %v is outside [0, 1]", l)}
	}
	if s < 0 || s > 1 {
		return Color{}, &ValidationError{Arg: "hls", Reason: fmt.Sprintf("saturation %v is outside [0, 1]", s)}
	}

	r, g, b := hlsToRGB(wrap(h), l, s)
	return derive(channel(r), channel(g), channel(b)), nil
}

// FromYIQ builds a Color from luma and chrominance components. The inverse
// transform clamps into the RGB cube, so every input yields a color.
func FromYIQ(y, i, q float64) Color {
	r, g, b := yiqToRGB(y, i, q)
	return derive(channel(r), channel(g), channel(b))
}

// Default returns the default color, [DefaultHex].
func Default() Color {
	c, _ := FromHex(DefaultHex)
	return c
}

// Random returns a color with each RGB channel drawn independently and
// uniformly from [0, 255]. The source must not be nil.
func Random(rnd *rand.Rand) Color {
	return derive(rnd.Intn(256), rnd.Intn(256), rnd.Intn(256))
}

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return derive(int(r>>8), int(g>>8), int(b>>8))
}

// RGB returns the red, green and blue channels in [0, 255].
func (c Color) RGB() (r, g, b int) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

// RGBFraction returns the RGB channels scaled into [0, 1].
func (c Color) RGBFraction() (r, g, b float64) {
	return c.fraction[0], c.fraction[1], c.fraction[2]
}

// Hex returns the lowercase 6-digit hex triplet without a leading "#".
func (c Color) Hex() string {
	return c.hex
}

// HSV returns the hue, saturation and value of the color.
func (c Color) HSV() (h, s, v float64) {
	return c.hsv[0], c.hsv[1], c.hsv[2]
}

// HLS returns the hue, lightness and saturation of the color.
func (c Color) HLS() (h, l, s float64) {
	return c.hls[0], c.hls[1], c.hls[2]
}

// YIQ returns the luma and chrominance components of the color.
func (c Color) YIQ() (y, i, q float64) {
	return c.yiq[0], c.yiq[1], c.yiq[2]
}

// Channels returns the channel values in R, G, B order. Each call returns a
// fresh slice.
func (c Color) Channels() []int {
	return []int{c.rgb[0], c.rgb[1], c.rgb[2]}
}

// Contains reports whether v occurs in the RGB triple.
func (c Color) Contains(v int) bool {
	return v == c.rgb[0] || v == c.rgb[1] || v == c.rgb[2]
}

// Uint32 returns the color packed as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.rgb[0])<<16 | uint32(c.rgb[1])<<8 | uint32(c.rgb[2])
}

// Equal reports whether both colors have the same RGB channels.
func (c Color) Equal(other Color) bool {
	return c.rgb == other.rgb
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.rgb[0])
	r |= r << 8
	g = uint32(c.rgb[1])
	g |= g << 8
	b = uint32(c.rgb[2])
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color as "#" followed by the hex triplet.
func (c Color) String() string {
	return "#" + c.hex
}

// GoString implements [fmt.GoStringer] for debugging output.
func (c Color) GoString() string {
	return fmt.Sprintf("colors.Color{#%s rgb(%d, %d, %d)}", c.hex, c.rgb[0], c.rgb[1], c.rgb[2])
}

// Interface checks.
var (
	_ color.Color    = Color{}
	_ fmt.Stringer   = Color{}
	_ fmt.GoStringer = Color{}
)
