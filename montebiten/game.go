package montebiten

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/montecarlo"
	"github.com/oliverbestmann/montecarlo/montebiten/color"
	"golang.org/x/image/font/basicfont"
)

const panelWidth = 300
const panelPadding = 16
const lineHeight = 16

var fontFace = text.NewGoXFace(basicfont.Face7x13)

type WindowConfig struct {
	Title string

	// Scale of the window relative to the logical screen size.
	Scale float64

	// TPS is the number of ticks per second. Every tick advances the sampler once.
	TPS int

	DisableResize bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title: "Monte Carlo π",
		Scale: 1,
		TPS:   60,
	}
}

// Run opens a window and drives the sampler until the window is closed or
// the user presses escape.
func Run(sampler *montecarlo.Sampler, win WindowConfig) error {
	g := newGame(sampler, win)

	width, height := g.Layout(0, 0)

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(int(float64(width)*win.Scale), int(float64(height)*win.Scale))
	ebiten.SetTPS(win.TPS)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	slog.Info("Start simulation",
		slog.Int("target", sampler.Target()),
		slog.String("rate", sampler.Rate().String()),
		slog.Int("tps", win.TPS))

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(g, &options)
}

type game struct {
	sampler  *montecarlo.Sampler
	messages *montecarlo.MessageReader[montecarlo.PhaseChanged]

	controls controls
	keys     Keys

	canvas  canvas
	toast   toast
	blinker blinker

	// stats of the last completed run, shown in the banner
	final montecarlo.Stats

	timings montecarlo.TimingStats
	delta   time.Duration
}

func newGame(sampler *montecarlo.Sampler, win WindowConfig) *game {
	g := &game{
		sampler:  sampler,
		messages: sampler.Messages().Reader(),
		blinker:  newBlinker(500 * time.Millisecond),
		timings:  montecarlo.NewTimingStats(),
		delta:    time.Second / time.Duration(max(1, win.TPS)),
	}

	g.controls = controls{
		sampler: sampler,
		notify:  g.toast.Show,
	}

	return g
}

func (g *game) Update() error {
	g.controls.Apply(g.keys)

	if g.controls.exit {
		return ebiten.Termination
	}

	stopwatch := g.timings.Measure("advance")
	g.sampler.Advance()
	stopwatch.Stop()

	for _, msg := range g.messages.Read() {
		g.onPhaseChanged(msg)
	}

	// messages of this tick have been consumed
	g.sampler.Messages().Update()

	g.toast.Tick(g.delta)
	g.blinker.Tick(g.delta)

	return nil
}

func (g *game) onPhaseChanged(msg montecarlo.PhaseChanged) {
	slog.Debug("Phase changed",
		slog.String("from", msg.From.String()),
		slog.String("to", msg.To.String()))

	if msg.Entered(montecarlo.PhaseComplete) {
		g.final = msg.Stats

		slog.Info("Simulation complete",
			slog.Int("generated", msg.Stats.Generated),
			slog.Int("inside", msg.Stats.Inside),
			slog.Float64("estimate", msg.Stats.PiEstimate),
			slog.Float64("error", msg.Stats.AbsoluteError))
	}

	if msg.Entered(montecarlo.PhasePaused) {
		g.blinker.Reset()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	stopwatch := g.timings.Measure("draw")
	defer stopwatch.Stop()

	screen.Fill(color.Black)

	drawDomain(screen, g.sampler)
	screen.DrawImage(g.canvas.sync(g.sampler), nil)

	g.drawPanel(screen)

	if g.sampler.Complete() {
		g.drawBanner(screen)
	}

	if message, alpha, ok := g.toast.Visible(); ok {
		domain := g.sampler.Domain()
		drawText(screen, message, domain.Width()/2, domain.Height()-2*lineHeight, text.AlignCenter, color.White.ScaleAlpha(alpha))
	}

	if g.controls.showTimings {
		g.drawTimings(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	domain := g.sampler.Domain()
	return int(domain.Width()) + panelWidth, max(int(domain.Height()), 420)
}

func (g *game) drawPanel(screen *ebiten.Image) {
	domain := g.sampler.Domain()
	stats := g.sampler.Stats()

	left := float32(domain.Width())
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, left, 0, panelWidth, height, color.PanelBackground, false)

	x := domain.Width() + panelPadding
	y := float64(panelPadding)

	drawText(screen, "MONTE CARLO PI", x, y, text.AlignStart, color.PanelText)
	y += 2 * lineHeight

	for _, line := range statLines(stats, g.sampler.Rate()) {
		drawText(screen, line, x, y, text.AlignStart, color.PanelText)
		y += lineHeight
	}

	// progress bar
	y += lineHeight / 2
	barWidth := float32(panelWidth - 2*panelPadding)
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, 8, color.ProgressTrack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth*float32(min(1, stats.Progress)), 8, color.MatrixGreen, false)
	y += 2 * lineHeight

	if g.sampler.Paused() && !g.sampler.Complete() && g.blinker.on {
		drawText(screen, "PAUSED", x, y, text.AlignStart, color.AlertRed)
	}

	y += 2 * lineHeight

	for _, line := range helpLines {
		drawText(screen, line, x, y, text.AlignStart, color.PanelText.WithAlpha(0.6))
		y += lineHeight
	}
}

func (g *game) drawBanner(screen *ebiten.Image) {
	domain := g.sampler.Domain()
	center := domain.Center()

	vector.DrawFilledRect(screen, 50, float32(center.Y-60), float32(domain.Width()-100), 120, color.BannerFill, false)
	vector.StrokeRect(screen, 50, float32(center.Y-60), float32(domain.Width()-100), 120, 2, color.MatrixGreen, false)

	y := center.Y - 36
	for _, line := range completionLines(g.final) {
		drawText(screen, line, center.X, y, text.AlignCenter, color.MatrixGreen)
		y += lineHeight
	}
}

func (g *game) drawTimings(screen *ebiten.Image) {
	var row int

	for _, name := range g.timings.Order {
		t := g.timings.ByName[name]

		line := fmt.Sprintf("%-8s runs=%6d, latest=%5.2fms, min=%5.2fms, max=%5.2fms, avg=%5.2fms",
			name,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		)

		ebitenutil.DebugPrintAt(screen, line, 8, 8+16*row)
		row += 1
	}
}

func drawText(screen *ebiten.Image, str string, x, y float64, align text.Align, clr color.Color) {
	var op text.DrawOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align

	text.Draw(screen, str, fontFace, &op)
}
