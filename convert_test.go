package colors

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var testTriples = [][3]int{
	{0, 0, 0},
	{255, 255, 255},
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{0, 255, 255},
	{255, 0, 255},
	{51, 102, 153},
	{51, 51, 51},
	{10, 20, 30},
	{200, 100, 50},
	{1, 254, 128},
}

// hueDiff measures the distance between two hues on the circle.
func hueDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// go-colorful serves as an independent oracle for the HSV and HLS
// transforms; it has no YIQ support, so YIQ is checked by inversion below.

func TestRGBToHSVAgainstColorful(t *testing.T) {
	for _, rgb := range testTriples {
		c, err := FromRGB(rgb[0], rgb[1], rgb[2])
		if err != nil {
			t.Fatal(err)
		}
		h, s, v := c.HSV()

		fr, fg, fb := c.RGBFraction()
		wh, ws, wv := colorful.Color{R: fr, G: fg, B: fb}.Hsv()
		if hueDiff(h, wh/360) > 1e-6 {
			t.Errorf("%s: expected hue %v, got %v", c, wh/360, h)
		}
		if math.Abs(s-ws) > 1e-6 || math.Abs(v-wv) > 1e-6 {
			t.Errorf("%s: expected s, v = %v, %v, got %v, %v", c, ws, wv, s, v)
		}
	}
}

func TestRGBToHLSAgainstColorful(t *testing.T) {
	for _, rgb := range testTriples {
		c, err := FromRGB(rgb[0], rgb[1], rgb[2])
		if err != nil {
			t.Fatal(err)
		}
		h, l, s := c.HLS()

		fr, fg, fb := c.RGBFraction()
		wh, ws, wl := colorful.Color{R: fr, G: fg, B: fb}.Hsl()
		if hueDiff(h, wh/360) > 1e-6 {
			t.Errorf("%s: expected hue %v, got %v", c, wh/360, h)
		}
		if math.Abs(s-ws) > 1e-6 || math.Abs(l-wl) > 1e-6 {
			t.Errorf("%s: expected l, s = %v, %v, got %v, %v", c, wl, ws, l, s)
		}
	}
}

func TestHSVToRGBAgainstColorful(t *testing.T) {
	for h := 0.0; h < 1; h += 0.05 {
		for _, sv := range [][2]float64{{1, 1}, {1, 0.8}, {0.5, 0.5}, {0, 0.7}, {0.25, 1}} {
			r, g, b := hsvToRGB(h, sv[0], sv[1])
			want := colorful.Hsv(h*360, sv[0], sv[1])
			got := [3]float64{r, g, b}
			if diff := cmp.Diff([3]float64{want.R, want.G, want.B}, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("hsv (%v, %v, %v) mismatch (-want +got):\n%s", h, sv[0], sv[1], diff)
			}
		}
	}
}

func TestHLSToRGBAgainstColorful(t *testing.T) {
	for h := 0.0; h < 1; h += 0.05 {
		for _, ls := range [][2]float64{{0.5, 1}, {0.5, 0.5}, {0.8, 0.3}, {0.2, 0.9}, {0.5, 0}} {
			r, g, b := hlsToRGB(h, ls[0], ls[1])
			want := colorful.Hsl(h*360, ls[1], ls[0])
			got := [3]float64{r, g, b}
			if diff := cmp.Diff([3]float64{want.R, want.G, want.B}, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
				t.Errorf("hls (%v, %v, %v) mismatch (-want +got):\n%s", h, ls[0], ls[1], diff)
			}
		}
	}
}

func TestYIQInversion(t *testing.T) {
	for _, rgb := range testTriples {
		fr := float64(rgb[0]) / 255
		fg := float64(rgb[1]) / 255
		fb := float64(rgb[2]) / 255
		y, i, q := rgbToYIQ(fr, fg, fb)
		r, g, b := yiqToRGB(y, i, q)
		got := [3]float64{r, g, b}
		if diff := cmp.Diff([3]float64{fr, fg, fb}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("rgb %v mismatch (-want +got):\n%s", rgb, diff)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, rgb := range testTriples {
		fr := float64(rgb[0]) / 255
		fg := float64(rgb[1]) / 255
		fb := float64(rgb[2]) / 255
		h, s, v := rgbToHSV(fr, fg, fb)
		r, g, b := hsvToRGB(h, s, v)
		got := [3]float64{r, g, b}
		if diff := cmp.Diff([3]float64{fr, fg, fb}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("rgb %v mismatch (-want +got):\n%s", rgb, diff)
		}
	}
}

func TestHLSRoundTrip(t *testing.T) {
	for _, rgb := range testTriples {
		fr := float64(rgb[0]) / 255
		fg := float64(rgb[1]) / 255
		fb := float64(rgb[2]) / 255
		h, l, s := rgbToHLS(fr, fg, fb)
		r, g, b := hlsToRGB(h, l, s)
		got := [3]float64{r, g, b}
		if diff := cmp.Diff([3]float64{fr, fg, fb}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("rgb %v mismatch (-want +got):\n%s", rgb, diff)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.25, 0.25},
		{2.5, 0.5},
		{-0.25, 0.75},
	}
	for _, test := range tests {
		if got := wrap(test.in); math.Abs(got-test.out) > 1e-12 {
			t.Errorf("expected wrap(%v) to be %v, got %v", test.in, test.out, got)
		}
	}
}
