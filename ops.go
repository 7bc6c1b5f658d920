package colors

import "math"

// The bounds of the RGB cube.
var (
	White = derive(255, 255, 255)
	Black = derive(0, 0, 0)
)

// clamp255 saturates a channel value into [0, 255].
func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// combine applies f channel-wise to two colors and derives a new color from
// the saturated result. Neither operand is modified.
func combine(a, b Color, f func(x, y int) int) Color {
	var rgb [3]int
	for i := range rgb {
		rgb[i] = clamp255(f(a.rgb[i], b.rgb[i]))
	}
	return derive(rgb[0], rgb[1], rgb[2])
}

// Multiply returns the "multiply" blend of both colors.
func (c Color) Multiply(other Color) Color {
	return combine(c, other, func(x, y int) int {
		return int(math.Floor(float64(x)*float64(y)/255 + 0.5))
	})
}

// Add returns the channel-wise sum of both colors, saturating at 255.
func (c Color) Add(other Color) Color {
	return combine(c, other, func(x, y int) int {
		return x + y
	})
}

// Subtract returns the channel-wise difference of both colors, saturating
// at 0.
func (c Color) Subtract(other Color) Color {
	return combine(c, other, func(x, y int) int {
		return x - y
	})
}

// Divide returns the channel-wise quotient of both colors. It returns a
// [DivisionError] if any channel of the divisor is zero.
func (c Color) Divide(other Color) (Color, error) {
	for i, v := range other.rgb {
		if v == 0 {
			return Color{}, &DivisionError{Channel: i}
		}
	}
	return combine(c, other, func(x, y int) int {
		return int(math.Floor(float64(x)/float64(y) + 0.5))
	}), nil
}

// Screen returns the photographic "screen" blend of both colors.
func (c Color) Screen(other Color) Color {
	return combine(c, other, func(x, y int) int {
		return 255 - int(math.Floor(float64(255-x)*float64(255-y)/255+0.5))
	})
}

// Difference returns the channel-wise absolute difference of both colors.
func (c Color) Difference(other Color) Color {
	return combine(c, other, func(x, y int) int {
		if x > y {
			return x - y
		}
		return y - x
	})
}

// Overlay returns the screen blend of the color with the multiply blend of
// both colors.
func (c Color) Overlay(other Color) Color {
	return c.Screen(c.Multiply(other))
}

// Invert returns the color mirrored in the RGB cube, so that
// c.Invert().Invert() equals c.
func (c Color) Invert() Color {
	return c.Difference(White)
}
