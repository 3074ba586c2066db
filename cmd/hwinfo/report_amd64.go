//go:build amd64

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kingpin/v2"

	"github.com/cwbudde/hwcounter"
)

// registerReportFlags adds the x86 inspection flags and returns the report
// step main runs after parsing.
func registerReportFlags(app *kingpin.Application) func(*slog.Logger) error {
	leaf := app.Flag("leaf", "CPUID leaf to dump, e.g. 0x1.").String()
	counter := app.Flag("counter", "Performance counter to read with RDPMC. "+
		"The counter must already be configured and RDPMC enabled for user space, "+
		"otherwise the process faults.").String()
	msrAddr := app.Flag("msr", "MSR address to read, e.g. 0x10 (linux only, needs root).").String()
	cpu := app.Flag("cpu", "Logical CPU for --msr.").Default("0").Int()

	return func(logger *slog.Logger) error {
		id := hwcounter.ReadIdentity()
		fmt.Printf("vendor:   %s\n", id.Vendor)
		if id.Brand != "" {
			fmt.Printf("brand:    %s\n", id.Brand)
		}
		fmt.Printf("family:   %#x  model %#x  stepping %#x\n", id.Family, id.Model, id.Stepping)
		fmt.Printf("tsc:      %d\n", hwcounter.ReadCycleCounter())

		if *leaf != "" {
			n, err := strconv.ParseUint(*leaf, 0, 32)
			if err != nil {
				return fmt.Errorf("parse --leaf: %w", err)
			}
			eax, ebx, ecx, edx := hwcounter.CPUID(uint32(n))
			fmt.Printf("cpuid %#x: eax=%#08x ebx=%#08x ecx=%#08x edx=%#08x\n",
				n, eax, ebx, ecx, edx)
		}

		if *counter != "" {
			n, err := strconv.ParseUint(*counter, 0, 32)
			if err != nil {
				return fmt.Errorf("parse --counter: %w", err)
			}
			logger.Debug("reading performance counter", "counter", n)
			fmt.Printf("pmc %d:    %d\n", n, hwcounter.ReadPerfCounter(uint32(n)))
		}

		if *msrAddr != "" {
			n, err := strconv.ParseUint(*msrAddr, 0, 63)
			if err != nil {
				return fmt.Errorf("parse --msr: %w", err)
			}
			value, err := dumpMSR(logger, *cpu, int64(n))
			if err != nil {
				return err
			}
			fmt.Printf("msr %#x (cpu %d): %#016x\n", n, *cpu, value)
		}

		return nil
	}
}
