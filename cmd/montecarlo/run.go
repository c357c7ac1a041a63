package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/montecarlo"
	"github.com/oliverbestmann/montecarlo/internal/report"
	"github.com/oliverbestmann/montecarlo/montebiten"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
)

// maximum number of points in the convergence chart
const chartPoints = 2_000

var app = &cli.App{
	Action:    run,
	Name:      "Monte Carlo estimator of π",
	HelpName:  "montecarlo",
	Usage:     "estimate π by sampling random points in a square",
	Flags: []cli.Flag{
		&TargetFlag,
		&RateFlag,
		&SeedFlag,
		&SizeFlag,
		&ScaleFlag,
		&TPSFlag,
		&HeadlessFlag,
		&ChartFlag,
		&LogLevelFlag,
		&CpuProfileFlag,
		&MemProfileFlag,
	},
}

func run(ctx *cli.Context) error {
	level, err := parseLogLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case ctx.Bool(CpuProfileFlag.Name):
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case ctx.Bool(MemProfileFlag.Name):
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	config, err := configFromFlags(ctx)
	if err != nil {
		return err
	}

	sampler, err := montecarlo.New(config, nil)
	if err != nil {
		return err
	}

	if ctx.Bool(HeadlessFlag.Name) {
		return runHeadless(ctx, sampler)
	}

	if ctx.IsSet(ChartFlag.Name) {
		slog.Warn("Ignoring chart flag without headless mode")
	}

	win := montebiten.DefaultWindowConfig()
	win.Scale = ctx.Float64(ScaleFlag.Name)
	win.TPS = ctx.Int(TPSFlag.Name)

	return montebiten.Run(sampler, win)
}

func runHeadless(ctx *cli.Context, sampler *montecarlo.Sampler) error {
	signalCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt)
	defer stop()

	recorder := report.NewRecorder(chartPoints)

	result, err := report.RunHeadless(signalCtx, sampler, recorder)
	switch {
	case errors.Is(err, context.Canceled):
		slog.Warn("Run interrupted", slog.Int("generated", result.Stats.Generated))
	case err != nil:
		return err
	}

	report.WriteSummary(ctx.App.Writer, result)

	if path := ctx.String(ChartFlag.Name); path != "" {
		if err := writeChart(path, recorder.Points()); err != nil {
			return err
		}

		slog.Info("Wrote convergence chart", slog.String("path", path))
	}

	return nil
}

func writeChart(path string, points []report.Point) error {
	fp, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create chart file")
	}

	defer fp.Close()

	if err := report.WriteChart(fp, points); err != nil {
		return errors.Wrapf(err, "render chart")
	}

	return fp.Close()
}
