package pinchzoom

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the bounds and gesture thresholds shared by the controller,
// recognizer and animator. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// MinScale and MaxScale bound every settled scale.
	MinScale float64 `toml:"min_scale"`
	MaxScale float64 `toml:"max_scale"`
	// TapScale is the scale a tap zooms to from MinScale.
	TapScale float64 `toml:"tap_scale"`

	// TapCount is the number of consecutive taps that make one Tap call.
	TapCount int `toml:"tap_count"`
	// DoubleTapInterval is the longest gap between consecutive taps.
	DoubleTapInterval Duration `toml:"double_tap_interval"`
	// TapSlop is how far apart consecutive taps may land, in pixels.
	TapSlop float64 `toml:"tap_slop"`
	// LongPressDuration is how long a pointer must be held still.
	LongPressDuration Duration `toml:"long_press_duration"`
	// DragDeadZone is the minimum movement in pixels before a drag starts.
	DragDeadZone float64 `toml:"drag_dead_zone"`

	// SpringDuration is the length of eased transitions.
	SpringDuration Duration `toml:"spring_duration"`
	// AppearDuration is the length of the fade-in when a page appears.
	AppearDuration Duration `toml:"appear_duration"`
}

// Duration wraps time.Duration so TOML files can use strings like "250ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the settings of the reference viewer: double tap to
// zoom to 5x, one second long press.
func DefaultConfig() Config {
	return Config{
		MinScale:          MinScale,
		MaxScale:          MaxScale,
		TapScale:          MaxScale,
		TapCount:          2,
		DoubleTapInterval: Duration{300 * time.Millisecond},
		TapSlop:           24,
		LongPressDuration: Duration{time.Second},
		DragDeadZone:      4,
		SpringDuration:    Duration{400 * time.Millisecond},
		AppearDuration:    Duration{time.Second},
	}
}

// LoadConfig parses TOML on top of DefaultConfig, so a file only needs the
// keys it changes.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every inconsistent setting, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if math.IsNaN(c.MinScale) || math.IsNaN(c.MaxScale) || math.IsNaN(c.TapScale) {
		return errors.New("invalid config: min_scale, max_scale and tap_scale must be numbers")
	}
	if c.MinScale <= 0 {
		errs = append(errs, fmt.Errorf("min_scale must be positive, got %v", c.MinScale))
	}
	if c.MaxScale < c.MinScale {
		errs = append(errs, fmt.Errorf("max_scale %v below min_scale %v", c.MaxScale, c.MinScale))
	}
	if c.TapScale < c.MinScale || c.TapScale > c.MaxScale {
		errs = append(errs, fmt.Errorf("tap_scale %v outside [%v, %v]", c.TapScale, c.MinScale, c.MaxScale))
	}
	if c.TapCount < 1 {
		errs = append(errs, fmt.Errorf("tap_count must be at least 1, got %d", c.TapCount))
	}
	if c.DragDeadZone < 0 || c.TapSlop < 0 {
		errs = append(errs, errors.New("drag_dead_zone and tap_slop must not be negative"))
	}
	if c.LongPressDuration.Duration <= 0 {
		errs = append(errs, errors.New("long_press_duration must be positive"))
	}
	for _, d := range []struct {
		key string
		v   time.Duration
	}{
		{"double_tap_interval", c.DoubleTapInterval.Duration},
		{"spring_duration", c.SpringDuration.Duration},
		{"appear_duration", c.AppearDuration.Duration},
	} {
		if d.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", d.key, d.v))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
