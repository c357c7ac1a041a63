package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/montecarlo"
	"github.com/urfave/cli/v2"
)

var (
	TargetFlag = cli.IntFlag{
		Name:  "target",
		Usage: "number of samples to generate",
		Value: montecarlo.DefaultConfig().Target,
	}
	RateFlag = cli.StringFlag{
		Name:  "rate",
		Usage: "samples per tick: 1-5 or very-slow, slow, medium, fast, very-fast",
		Value: "medium",
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random source, 0 picks a random seed",
	}
	SizeFlag = cli.Float64Flag{
		Name:  "size",
		Usage: "edge length of the square sampling domain in pixels",
		Value: montecarlo.DefaultConfig().Width,
	}
	ScaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "window scale factor",
		Value: 1,
	}
	TPSFlag = cli.IntFlag{
		Name:  "tps",
		Usage: "ticks per second, every tick generates one batch",
		Value: 60,
	}
	HeadlessFlag = cli.BoolFlag{
		Name:  "headless",
		Usage: "run to completion without a window and print a summary",
	}
	ChartFlag = cli.StringFlag{
		Name:  "chart",
		Usage: "write an html convergence chart to this file (headless only)",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "debug, info, warn or error",
		Value: "info",
	}
	CpuProfileFlag = cli.BoolFlag{
		Name:  "cpuprofile",
		Usage: "write a cpu profile to the working directory",
	}
	MemProfileFlag = cli.BoolFlag{
		Name:  "memprofile",
		Usage: "write a memory profile to the working directory",
	}
)

// configFromFlags builds the sampler configuration from the command line.
func configFromFlags(ctx *cli.Context) (montecarlo.Config, error) {
	rate, err := montecarlo.ParseRateLevel(ctx.String(RateFlag.Name))
	if err != nil {
		return montecarlo.Config{}, err
	}

	size := ctx.Float64(SizeFlag.Name)

	config := montecarlo.Config{
		Target:   ctx.Int(TargetFlag.Name),
		Rate:     rate,
		Width:    size,
		Height:   size,
		Diameter: size,
		Seed:     ctx.Uint64(SeedFlag.Name),
	}

	if err := config.Validate(); err != nil {
		return montecarlo.Config{}, err
	}

	return config, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, errors.WithHint(
			errors.Wrapf(err, "log level %q", value),
			"use one of debug, info, warn or error",
		)
	}

	return level, nil
}
