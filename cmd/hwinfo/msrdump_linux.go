//go:build linux && amd64

package main

import (
	"log/slog"

	"github.com/cwbudde/hwcounter/msr"
)

func dumpMSR(logger *slog.Logger, cpu int, addr int64) (uint64, error) {
	logger.Debug("opening msr device", "cpu", cpu)

	h, err := msr.Open(cpu)
	if err != nil {
		return 0, err
	}
	defer h.Close()

	return h.Read(addr)
}
