package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rileylov/sortable/geom"
	"github.com/rileylov/sortable/sortable"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the entire application configuration.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
	List       ListConfig       `mapstructure:"list" yaml:"list"`
	AutoScroll AutoScrollConfig `mapstructure:"autoscroll" yaml:"autoscroll"`
	UI         UIConfig         `mapstructure:"ui" yaml:"ui"`
	Source     SourceConfig     `mapstructure:"source" yaml:"source"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// ListConfig mirrors the engine flags. Lengths are terminal cells.
type ListConfig struct {
	Direction               string        `mapstructure:"direction" yaml:"direction"`
	Gap                     int           `mapstructure:"gap" yaml:"gap"`
	TransitionDuration      time.Duration `mapstructure:"transition_duration" yaml:"transition_duration"`
	DragStartDelay          time.Duration `mapstructure:"drag_start_delay" yaml:"drag_start_delay"`
	HasLockedAxis           bool          `mapstructure:"has_locked_axis" yaml:"has_locked_axis"`
	HasBoundaries           bool          `mapstructure:"has_boundaries" yaml:"has_boundaries"`
	HasWrapping             bool          `mapstructure:"has_wrapping" yaml:"has_wrapping"`
	CanClearTargetOnDragOut bool          `mapstructure:"can_clear_target_on_drag_out" yaml:"can_clear_target_on_drag_out"`
	CanRemoveOnDropOut      bool          `mapstructure:"can_remove_on_drop_out" yaml:"can_remove_on_drop_out"`
	SwapThreshold           float64       `mapstructure:"swap_threshold" yaml:"swap_threshold"`
	IsLocked                bool          `mapstructure:"is_locked" yaml:"is_locked"`
	IsDisabled              bool          `mapstructure:"is_disabled" yaml:"is_disabled"`
	Group                   string        `mapstructure:"group" yaml:"group"`
	RTL                     bool          `mapstructure:"rtl" yaml:"rtl"`
	// CellWidth is the width of one cell of a wrapping grid.
	CellWidth int `mapstructure:"cell_width" yaml:"cell_width"`
}

// AutoScrollConfig controls scrolling while an item is dragged near an edge.
type AutoScrollConfig struct {
	Interval     time.Duration `mapstructure:"interval" yaml:"interval"`
	SpeedRatio   float64       `mapstructure:"speed_ratio" yaml:"speed_ratio"`
	ScrollMargin int           `mapstructure:"scroll_margin" yaml:"scroll_margin"`
}

// UIConfig holds terminal front end settings.
type UIConfig struct {
	// Handle restricts drag starts to the grip in front of each row.
	Handle  bool `mapstructure:"handle" yaml:"handle"`
	ShowLog bool `mapstructure:"show_log" yaml:"show_log"`
	// Split is the share of the width given to the list when the event log
	// is shown.
	Split float64 `mapstructure:"split" yaml:"split"`
}

// SourceConfig selects where the initial items come from. At most one of
// File, Dir and Locate may be set; command line arguments win over all.
type SourceConfig struct {
	File   string `mapstructure:"file" yaml:"file"`
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Locate string `mapstructure:"locate" yaml:"locate"`
	Limit  int    `mapstructure:"limit" yaml:"limit"`
}

// NewDefaultConfig creates a new configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "sortable")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- List --
	v.SetDefault("list.direction", "vertical")
	v.SetDefault("list.gap", 0)
	v.SetDefault("list.transition_duration", "150ms")
	v.SetDefault("list.drag_start_delay", "0s")
	v.SetDefault("list.has_locked_axis", false)
	v.SetDefault("list.has_boundaries", false)
	v.SetDefault("list.has_wrapping", false)
	v.SetDefault("list.can_clear_target_on_drag_out", false)
	v.SetDefault("list.can_remove_on_drop_out", false)
	v.SetDefault("list.swap_threshold", 1.0)
	v.SetDefault("list.is_locked", false)
	v.SetDefault("list.is_disabled", false)
	v.SetDefault("list.group", "")
	v.SetDefault("list.rtl", false)
	v.SetDefault("list.cell_width", 16)

	// -- Auto-scroll --
	v.SetDefault("autoscroll.interval", "50ms")
	v.SetDefault("autoscroll.speed_ratio", 2.0)
	v.SetDefault("autoscroll.scroll_margin", 1)

	// -- UI --
	v.SetDefault("ui.handle", false)
	v.SetDefault("ui.show_log", true)
	v.SetDefault("ui.split", 0.6)

	// -- Source --
	v.SetDefault("source.file", "")
	v.SetDefault("source.dir", "")
	v.SetDefault("source.locate", "")
	v.SetDefault("source.limit", 200)
}

// NewConfigFromViper unmarshals and validates the configuration held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if err := c.List.Validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if err := c.AutoScroll.Validate(); err != nil {
		return fmt.Errorf("autoscroll: %w", err)
	}
	if c.UI.Split <= 0 || c.UI.Split >= 1 {
		return fmt.Errorf("%w: ui.split must be between 0 and 1", ErrInvalid)
	}
	return c.Source.Validate()
}

// Validate checks the list settings.
func (l *ListConfig) Validate() error {
	if _, err := geom.ParseAxis(l.Direction); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if l.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative", ErrInvalid)
	}
	if l.TransitionDuration < 0 || l.DragStartDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalid)
	}
	if l.SwapThreshold <= 0 {
		return fmt.Errorf("%w: swap_threshold must be positive", ErrInvalid)
	}
	if l.HasWrapping && l.CellWidth < 4 {
		return fmt.Errorf("%w: cell_width must be at least 4 for a wrapping list", ErrInvalid)
	}
	return nil
}

// Validate checks the auto-scroll settings.
func (a *AutoScrollConfig) Validate() error {
	if a.Interval <= 0 {
		return fmt.Errorf("%w: interval must be a positive duration", ErrInvalid)
	}
	if a.SpeedRatio <= 0 {
		return fmt.Errorf("%w: speed_ratio must be positive", ErrInvalid)
	}
	if a.ScrollMargin < 0 {
		return fmt.Errorf("%w: scroll_margin must not be negative", ErrInvalid)
	}
	return nil
}

// Validate checks that at most one item source is configured.
func (s *SourceConfig) Validate() error {
	var set []string
	for name, v := range map[string]string{"file": s.File, "dir": s.Dir, "locate": s.Locate} {
		if strings.TrimSpace(v) != "" {
			set = append(set, name)
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: source accepts one of file, dir and locate", ErrInvalid)
	}
	if s.Limit < 0 {
		return fmt.Errorf("%w: source.limit must not be negative", ErrInvalid)
	}
	return nil
}

// ToEngine converts the list and auto-scroll sections into engine settings.
// It expects a validated configuration.
func (c *Config) ToEngine() sortable.Config {
	axis, _ := geom.ParseAxis(c.List.Direction)
	l := c.List
	return sortable.Config{
		Direction:               axis,
		Gap:                     float64(l.Gap),
		TransitionDuration:      l.TransitionDuration,
		DragStartDelay:          l.DragStartDelay,
		HasLockedAxis:           l.HasLockedAxis,
		HasBoundaries:           l.HasBoundaries,
		HasWrapping:             l.HasWrapping,
		CanClearTargetOnDragOut: l.CanClearTargetOnDragOut,
		CanRemoveOnDropOut:      l.CanRemoveOnDropOut,
		SwapThreshold:           l.SwapThreshold,
		IsLocked:                l.IsLocked,
		IsDisabled:              l.IsDisabled,
		Group:                   l.Group,
		AutoScrollInterval:      c.AutoScroll.Interval,
		AutoScrollSpeedRatio:    c.AutoScroll.SpeedRatio,
		ScrollMargin:            float64(c.AutoScroll.ScrollMargin),
	}
}
