package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
// The zero value means "use the terminal default".
type Color struct {
	R, G, B uint8
	Set     bool
}

// ColorDefault leaves the cell unstyled.
var ColorDefault = Color{}

// RGB builds a color from integer channels, clamping each to [0, 255].
func RGB(r, g, b int) Color {
	return Color{
		R:   channel(r),
		G:   channel(g),
		B:   channel(b),
		Set: true,
	}
}

// channel clamps an integer color component to a byte.
func channel(v int) uint8 {
	return uint8(Clamp(v, 0, 255)) //#nosec G115 -- clamped above
}

// Scale multiplies every channel by f. Used for shading (f < 1) and glows.
func (c Color) Scale(f float64) Color {
	if !c.Set {
		return c
	}
	return RGB(int(float64(c.R)*f), int(float64(c.G)*f), int(float64(c.B)*f))
}

// Lerp blends from c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) int {
		return int(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGB(mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B))
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
