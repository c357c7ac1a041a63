package montebiten

import (
	"fmt"

	"github.com/oliverbestmann/montecarlo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatCount formats n with thousands separators.
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// statLines returns the lines of the statistics panel.
func statLines(stats montecarlo.Stats, rate montecarlo.RateLevel) []string {
	return []string{
		fmt.Sprintf("PI ESTIMATE  %.6f", stats.PiEstimate),
		fmt.Sprintf("ERROR        %.6f", stats.AbsoluteError),
		fmt.Sprintf("95%% CI       %.4f .. %.4f", stats.Confidence95[0], stats.Confidence95[1]),
		"",
		fmt.Sprintf("POINTS       %s", formatCount(stats.Generated)),
		fmt.Sprintf("INSIDE       %s (%.2f%%)", formatCount(stats.Inside), stats.InsidePercent),
		"",
		fmt.Sprintf("TARGET       %s", formatCount(stats.Target)),
		fmt.Sprintf("SPEED        %s (%d/tick)", rate, rate.BatchSize()),
	}
}

// completionLines returns the lines of the banner shown after a run completed.
func completionLines(stats montecarlo.Stats) []string {
	return []string{
		">>> SIMULATION COMPLETE <<<",
		"",
		fmt.Sprintf("PI ~ %.6f", stats.PiEstimate),
		fmt.Sprintf("Error: %.6f", stats.AbsoluteError),
	}
}

var helpLines = []string{
	"SPACE  pause / resume",
	"R      restart",
	"1-5    speed",
	"UP/DN  target",
	"D      timings",
}
