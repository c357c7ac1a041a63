package montebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/montecarlo"
	"github.com/oliverbestmann/montecarlo/montebiten/color"
)

const pointRadius = 2.5

// canvas rasterizes the sample history into an offscreen image. Every sample is
// drawn exactly once; the image is cleared when the sampler starts a new run.
type canvas struct {
	image *ebiten.Image

	run   int
	drawn int
}

func (c *canvas) sync(sampler *montecarlo.Sampler) *ebiten.Image {
	domain := sampler.Domain()

	if c.image == nil {
		c.image = ebiten.NewImage(int(domain.Width()), int(domain.Height()))
	}

	history := sampler.History()

	if c.run != sampler.Run() || len(history) < c.drawn {
		c.image.Clear()
		c.run = sampler.Run()
		c.drawn = 0
	}

	for _, sample := range history[c.drawn:] {
		clr := color.Outside
		if sample.Inside {
			clr = color.Inside
		}

		x, y := sample.Position.Sub(domain.Min).XY32()
		vector.DrawFilledCircle(c.image, x, y, pointRadius, clr, true)
	}

	c.drawn = len(history)

	return c.image
}

// drawDomain draws the outline of the sampling domain and its inscribed circle.
func drawDomain(screen *ebiten.Image, sampler *montecarlo.Sampler) {
	domain := sampler.Domain()
	circle := sampler.Circle()

	x, y := domain.Min.XY32()
	vector.StrokeRect(screen, x, y, float32(domain.Width()), float32(domain.Height()), 2, color.SquareStroke, true)

	cx, cy := circle.Center.XY32()
	vector.StrokeCircle(screen, cx, cy, float32(circle.Radius), 2, color.CircleStroke, true)
}
