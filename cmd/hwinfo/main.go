//go:build amd64 || ppc64 || ppc64le

// Command hwinfo prints what the executing processor reports about itself:
// identity, instruction-set features, and raw register reads.
//
// Register dumps are one-shot. The command does not sample, aggregate, or
// convert anything; it prints the raw values and exits.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/cwbudde/hwcounter"
)

func main() {
	app := kingpin.New("hwinfo", "Inspect processor identity and hardware counters.")
	logLevel := app.Flag("log.level", "Logging level: debug, info, warn, error").
		Default("info").Enum("debug", "info", "warn", "error")
	logFormat := app.Flag("log.format", "Logging format: text or json").
		Default("text").Enum("text", "json")
	report := registerReportFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := setupLogger(*logLevel, *logFormat)

	fmt.Printf("cpu:      %s\n", hwcounter.CPUString())
	fmt.Printf("features: %+v\n", hwcounter.DetectFeatures())

	if err := report(logger); err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(1)
	}
}
