// Package config loads the optional TOML configuration controlling status
// thresholds and raw-field defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
)

type MissingFieldsError = toml.StrictMissingError

type Config struct {
	Thresholds Thresholds `toml:"thresholds"`
	Defaults   Defaults   `toml:"defaults"`
}

type Thresholds struct {
	// RTPAlert is the exclusive RTP bound above which a record is ALERT.
	RTPAlert decimal.Decimal `toml:"rtp_alert"`

	// RTPWatch is the inclusive RTP bound above which a record is WATCH.
	RTPWatch decimal.Decimal `toml:"rtp_watch"`

	// RTPLow is the exclusive RTP bound below which a record is LOW RTP.
	RTPLow decimal.Decimal `toml:"rtp_low"`

	// GGRMarginWeak is the GGR/turnover margin below which GGR is Weak.
	GGRMarginWeak decimal.Decimal `toml:"ggr_margin_weak"`

	// GGRFloor is the absolute GGR, in currency units, below which GGR is
	// Weak regardless of margin.
	GGRFloor decimal.Decimal `toml:"ggr_floor"`

	// AvailabilityLow is the availability fraction below which the
	// availability advisory note fires.
	AvailabilityLow decimal.Decimal `toml:"availability_low"`
}

type Defaults struct {
	// Date fills a blank date field, e.g. "2026-01-01".
	Date string `toml:"date"`

	// Availability fills a blank availability field, e.g. "99.8%".
	Availability string `toml:"availability"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	t := kpi.DefaultThresholds()
	return Config{
		Thresholds: Thresholds{
			RTPAlert:        t.RTPAlert,
			RTPWatch:        t.RTPWatch,
			RTPLow:          t.RTPLow,
			GGRMarginWeak:   t.GGRMarginWeak,
			GGRFloor:        t.GGRFloor,
			AvailabilityLow: t.AvailabilityLow,
		},
		Defaults: Defaults{
			Date:         "2026-01-01",
			Availability: "99.8%",
		},
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	config := Default()

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

// KPIThresholds converts the configured thresholds for the calculator.
func (c Config) KPIThresholds() kpi.Thresholds {
	return kpi.Thresholds{
		RTPAlert:        c.Thresholds.RTPAlert,
		RTPWatch:        c.Thresholds.RTPWatch,
		RTPLow:          c.Thresholds.RTPLow,
		GGRMarginWeak:   c.Thresholds.GGRMarginWeak,
		GGRFloor:        c.Thresholds.GGRFloor,
		AvailabilityLow: c.Thresholds.AvailabilityLow,
	}
}

// ImportDefaults converts the configured raw-field defaults for import.
func (c Config) ImportDefaults() csv.Defaults {
	return csv.Defaults{
		Date:         c.Defaults.Date,
		Availability: c.Defaults.Availability,
	}
}

func DumpUnknownFields(err error) string {
	var sme *toml.StrictMissingError
	if errors.As(err, &sme) {
		return sme.String()
	}
	return ""
}
