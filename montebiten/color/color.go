package color

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Matrix style palette of the visualization.
var (
	MatrixGreen = RGB8(0, 255, 65)
	AlertRed    = RGB8(255, 0, 85)

	Inside  = MatrixGreen.WithAlpha(0.8)
	Outside = AlertRed.WithAlpha(0.8)

	SquareStroke = MatrixGreen.WithAlpha(50.0 / 255)
	CircleStroke = MatrixGreen.WithAlpha(80.0 / 255)

	PanelText       = MatrixGreen
	PanelBackground = RGB8(8, 16, 10)
	ProgressTrack   = MatrixGreen.WithAlpha(0.15)
	BannerFill      = MatrixGreen.WithAlpha(20.0 / 255)
)

// Color is a non alpha pre-multiplied color value.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// RGB8 builds an opaque color from 8 bit channel values.
func RGB8(r, g, b uint8) Color {
	return RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// ScaleAlpha multiplies the alpha channel with the given factor.
func (c Color) ScaleAlpha(f float32) Color {
	c.A = clamp(c.A*f, 0, 1)
	return c
}

func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
