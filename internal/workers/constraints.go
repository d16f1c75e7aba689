package workers

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
)

// lowBatteryPercent is the charge below which a discharging battery blocks
// periodic syncs.
const lowBatteryPercent = 15

// Constraints gate periodic sync runs.
type Constraints interface {
	// Satisfied reports whether a periodic run may start now.
	Satisfied(ctx context.Context) bool
}

// ConstraintsFunc adapts a function to [Constraints].
type ConstraintsFunc func(ctx context.Context) bool

func (f ConstraintsFunc) Satisfied(ctx context.Context) bool { return f(ctx) }

// Pinger probes the sync server. adapter.ServerAdapter implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PowerSource reports the battery state of the device.
type PowerSource interface {
	BatteryLow() bool
}

type deviceConstraints struct {
	pinger       Pinger
	power        PowerSource
	probeTimeout time.Duration
	logger       *logger.Logger
}

// NewDeviceConstraints requires the sync server to answer a ping within
// probeTimeout and the battery not to be low.
func NewDeviceConstraints(pinger Pinger, power PowerSource, probeTimeout time.Duration, logger *logger.Logger) Constraints {
	return &deviceConstraints{
		pinger:       pinger,
		power:        power,
		probeTimeout: probeTimeout,
		logger:       logger,
	}
}

func (c *deviceConstraints) Satisfied(ctx context.Context) bool {
	if c.power.BatteryLow() {
		c.logger.Debug().Msg("battery low")
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	if err := c.pinger.Ping(probeCtx); err != nil {
		c.logger.Debug().Err(err).Msg("sync server unreachable")
		return false
	}
	return true
}

// SysfsPowerSource reads the battery state from /sys/class/power_supply.
// Devices without a battery are never low.
type SysfsPowerSource struct {
	// Dir defaults to /sys/class/power_supply.
	Dir string
}

func (p SysfsPowerSource) BatteryLow() bool {
	dir := p.Dir
	if dir == "" {
		dir = "/sys/class/power_supply"
	}

	batteries, err := filepath.Glob(filepath.Join(dir, "BAT*"))
	if err != nil || len(batteries) == 0 {
		return false
	}

	for _, bat := range batteries {
		status := readSysfs(filepath.Join(bat, "status"))
		if status == "Charging" || status == "Full" {
			return false
		}
		capacity, err := strconv.Atoi(readSysfs(filepath.Join(bat, "capacity")))
		if err != nil || capacity >= lowBatteryPercent {
			return false
		}
	}
	return true
}

func readSysfs(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
