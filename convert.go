package colors

import "math"

// wrap normalizes a hue (or phase) into [0, 1). Hue is circular, so any
// finite input maps onto the wheel.
func wrap(h float64) float64 {
	return h - math.Floor(h)
}

func clampFraction(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}

	rangec := maxc - minc
	s = rangec / maxc
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return wrap(h / 6), s, v
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc
	l = sumc / 2
	if minc == maxc {
		return 0, l, 0
	}

	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2 - sumc)
	}
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return wrap(h / 6), l, s
}

func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hlsComponent(m1, m2, h+1.0/3), hlsComponent(m1, m2, h), hlsComponent(m1, m2, h-1.0/3)
}

func hlsComponent(m1, m2, hue float64) float64 {
	hue = wrap(hue)
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

func rgbToYIQ(r, g, b float64) (y, i, q float64) {
	y = 0.30*r + 0.59*g + 0.11*b
	i = 0.74*(r-y) - 0.27*(b-y)
	q = 0.48*(r-y) + 0.41*(b-y)
	return y, i, q
}

// yiqToRGB is the inverse of rgbToYIQ. Components are clamped into [0, 1]
// because not every YIQ triple maps into the RGB cube.
func yiqToRGB(y, i, q float64) (r, g, b float64) {
	r = y + 0.9468822170900693*i + 0.6235565819861433*q
	g = y - 0.27478764629897834*i - 0.6356910791873801*q
	b = y - 1.1085450346420322*i + 1.7090069284064666*q
	return clampFraction(r), clampFraction(g), clampFraction(b)
}
