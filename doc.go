// Package colors implements a color value library with conversions between
// hex, RGB, HSV, HLS and YIQ representations, arithmetic and photographic
// blend operations, and a hue wheel generator for evenly distributed colors.
//
// The [Color] type is compatible with Go's native [color.Color] interface, so
// values from this package can be used directly with [image.Image] and
// [draw.Image] implementations.
package colors
