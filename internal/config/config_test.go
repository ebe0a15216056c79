package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rileylov/sortable/geom"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "sortable", cfg.Logger.ServiceName)
	assert.Equal(t, "vertical", cfg.List.Direction)
	assert.Equal(t, 150*time.Millisecond, cfg.List.TransitionDuration)
	assert.Equal(t, 1.0, cfg.List.SwapThreshold)
	assert.Equal(t, 50*time.Millisecond, cfg.AutoScroll.Interval)
	assert.Equal(t, 2.0, cfg.AutoScroll.SpeedRatio)
	assert.Equal(t, 200, cfg.Source.Limit)
	assert.True(t, cfg.UI.ShowLog)
	require.NoError(t, cfg.Validate())
}

func TestNewConfigFromViper(t *testing.T) {
	t.Run("yaml overrides defaults", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		yaml := []byte(`
list:
  direction: horizontal
  has_boundaries: true
  transition_duration: 1s
autoscroll:
  interval: 20ms
source:
  dir: /tmp
`)
		require.NoError(t, v.ReadConfig(bytes.NewReader(yaml)))

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "horizontal", cfg.List.Direction)
		assert.True(t, cfg.List.HasBoundaries)
		assert.Equal(t, time.Second, cfg.List.TransitionDuration)
		assert.Equal(t, 20*time.Millisecond, cfg.AutoScroll.Interval)
		assert.Equal(t, "/tmp", cfg.Source.Dir)
	})

	t.Run("invalid values are reported", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("list.direction", "diagonal")

		_, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "diagonal")
	})
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"negative gap", func(c *Config) { c.List.Gap = -1 }, "gap must not be negative"},
		{"negative delay", func(c *Config) { c.List.DragStartDelay = -time.Second }, "durations must not be negative"},
		{"zero threshold", func(c *Config) { c.List.SwapThreshold = 0 }, "swap_threshold must be positive"},
		{"narrow grid", func(c *Config) { c.List.HasWrapping = true; c.List.CellWidth = 2 }, "cell_width"},
		{"zero interval", func(c *Config) { c.AutoScroll.Interval = 0 }, "interval must be a positive duration"},
		{"zero speed", func(c *Config) { c.AutoScroll.SpeedRatio = 0 }, "speed_ratio must be positive"},
		{"split out of range", func(c *Config) { c.UI.Split = 1 }, "ui.split"},
		{"two sources", func(c *Config) { c.Source.File = "a.txt"; c.Source.Dir = "." }, "one of file, dir and locate"},
		{"negative limit", func(c *Config) { c.Source.Limit = -5 }, "source.limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestToEngine(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.List.Direction = "horizontal"
	cfg.List.Gap = 2
	cfg.List.CanRemoveOnDropOut = true
	cfg.List.Group = "todo"
	cfg.AutoScroll.ScrollMargin = 3

	ec := cfg.ToEngine()
	assert.Equal(t, geom.Horizontal, ec.Direction)
	assert.Equal(t, 2.0, ec.Gap)
	assert.True(t, ec.CanRemoveOnDropOut)
	assert.Equal(t, "todo", ec.Group)
	assert.Equal(t, 150*time.Millisecond, ec.TransitionDuration)
	assert.Equal(t, 50*time.Millisecond, ec.AutoScrollInterval)
	assert.Equal(t, 2.0, ec.AutoScrollSpeedRatio)
	assert.Equal(t, 3.0, ec.ScrollMargin)
}
