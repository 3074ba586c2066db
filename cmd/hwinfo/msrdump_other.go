//go:build amd64 && !linux

package main

import (
	"errors"
	"log/slog"
)

func dumpMSR(_ *slog.Logger, _ int, _ int64) (uint64, error) {
	return 0, errors.New("msr access requires linux")
}
