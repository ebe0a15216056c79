// Package cmd wires configuration, logging and the item sources to the
// terminal front end.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rileylov/sortable/internal/config"
	"github.com/rileylov/sortable/internal/observability"
	"github.com/rileylov/sortable/internal/source"
	"github.com/rileylov/sortable/internal/tui"
)

// runProgram runs the bubbletea program; tests replace it.
var runProgram = func(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var (
		cfgFile    string
		cfg        *config.Config
		printOrder bool
	)

	cmd := &cobra.Command{
		Use:   "sortable [items...]",
		Short: "Reorder a list in the terminal with the mouse or the keyboard.",
		Long: `sortable shows a list and lets you drag its items into a new order.

Items come from the arguments, a file (--file), a directory (--dir) or a
plocate query (--locate). Without any of those a demo list is shown.`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}
			c, err := config.NewConfigFromViper(v)
			if err != nil {
				return err
			}
			cfg = c
			// The alternate screen owns the terminal; log lines only reach the log file.
			observability.Initialize(cfg.Logger, zapcore.AddSync(io.Discard))
			observability.GetLogger().Debug("Configuration loaded.",
				zap.String("config_file", v.ConfigFileUsed()),
				zap.String("version", Version),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer observability.Sync()
			order, err := run(cmd.Context(), cfg, args)
			if err != nil {
				return err
			}
			if printOrder {
				for _, it := range order {
					fmt.Fprintln(cmd.OutOrStdout(), it.Label)
				}
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	def := config.NewDefaultConfig()
	pf := cmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./sortable.yaml)")
	pf.String("log-file", def.Logger.LogFile, "write JSON logs to this file")
	pf.String("log-level", def.Logger.Level, "log level")

	cmd.Flags().BoolVarP(&printOrder, "print", "p", false, "print the final order to stdout on exit")

	pf.StringP("file", "f", "", "read items from a file, one per line")
	pf.StringP("dir", "d", "", "list the entries of a directory")
	pf.StringP("locate", "l", "", "list the paths plocate finds for a query")
	pf.Int("limit", def.Source.Limit, "maximum number of loaded items")
	pf.String("direction", def.List.Direction, "list axis: vertical or horizontal")
	pf.Int("gap", def.List.Gap, "cells between items")
	pf.Bool("wrap", def.List.HasWrapping, "lay the items out in a grid")
	pf.Bool("bounds", def.List.HasBoundaries, "keep the ghost inside the list")
	pf.Bool("locked-axis", def.List.HasLockedAxis, "move the ghost along the list axis only")
	pf.Bool("remove", def.List.CanRemoveOnDropOut, "remove items dropped outside the list")
	pf.Bool("clear", def.List.CanClearTargetOnDragOut, "clear the target when dragging outside the list")
	pf.Bool("rtl", def.List.RTL, "right-to-left text direction")
	pf.Bool("handle", def.UI.Handle, "drag only by the handle")
	pf.Bool("show-log", def.UI.ShowLog, "show the event log")
	pf.Duration("transition", def.List.TransitionDuration, "drop transition duration")
	pf.Duration("delay", def.List.DragStartDelay, "hold time before a pointer drag starts")

	bind := map[string]string{
		"logger.log_file":                   "log-file",
		"logger.level":                      "log-level",
		"source.file":                       "file",
		"source.dir":                        "dir",
		"source.locate":                     "locate",
		"source.limit":                      "limit",
		"list.direction":                    "direction",
		"list.gap":                          "gap",
		"list.has_wrapping":                 "wrap",
		"list.has_boundaries":               "bounds",
		"list.has_locked_axis":              "locked-axis",
		"list.can_remove_on_drop_out":       "remove",
		"list.can_clear_target_on_drag_out": "clear",
		"list.rtl":                          "rtl",
		"ui.handle":                         "handle",
		"ui.show_log":                       "show-log",
		"list.transition_duration":          "transition",
		"list.drag_start_delay":             "delay",
	}
	for key, name := range bind {
		// Lookup cannot miss for the names registered above.
		_ = v.BindPFlag(key, pf.Lookup(name))
	}

	cmd.AddCommand(newVersionCmd(), newConfigCmd(func() *config.Config { return cfg }))
	return cmd
}

// initializeConfig reads the config file and the SORTABLE_ environment.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sortable")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SORTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// run loads the items and runs the list until the user quits. It returns
// the final order.
func run(ctx context.Context, cfg *config.Config, args []string) ([]source.Item, error) {
	logger := observability.GetLogger()
	src := source.FromConfig(cfg.Source, args)
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items from %s: %w", src.Name(), err)
	}
	logger.Info("Items loaded.", zap.String("source", src.Name()), zap.Int("count", len(items)))

	zones := zone.New()
	defer zones.Close()

	m := tui.New(cfg, items, zones,
		tui.WithLogger(logger.Named("tui")),
		tui.WithSourceName(src.Name()),
	)
	final, err := runProgram(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error running program: %w", err)
	}
	if fm, ok := final.(*tui.Model); ok {
		m = fm
	}
	return m.Items(), nil
}
