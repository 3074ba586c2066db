//go:build ppc64 || ppc64le

package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kingpin/v2"

	"github.com/cwbudde/hwcounter"
)

// registerReportFlags adds no extra flags on POWER; the whole report comes
// from the processor version register.
func registerReportFlags(_ *kingpin.Application) func(*slog.Logger) error {
	return func(*slog.Logger) error {
		id := hwcounter.ReadIdentity()
		fmt.Printf("pvr:      %#08x  (version %#04x revision %#04x)\n",
			id.PVR, id.Version, id.Revision)
		return nil
	}
}
