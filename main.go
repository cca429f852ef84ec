// Package main provides the CLI entrypoint for plotter.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"plotter/app"
	"plotter/hal"
	"plotter/internal/buildinfo"
	"plotter/internal/config"
	"plotter/tasks/plotter"
)

type options struct {
	configPath string
	headless   hal.HeadlessConfig
	quiet      bool
	settings   config.Settings
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{settings: config.Defaults()}

	rootCmd := &cobra.Command{
		Use:          "plotter",
		Short:        "Interactive function plotter",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "path to TOML config file")
	pf.StringVar(&opts.settings.Expression, config.FlagExpr, "", "expression to plot in x")
	pf.StringVar(&opts.settings.Builtin, config.FlagBuiltin, "", "built-in function name or index")
	pf.IntVar(&opts.settings.Width, config.FlagWidth, opts.settings.Width, "plot width in pixels")
	pf.IntVar(&opts.settings.Height, config.FlagHeight, opts.settings.Height, "plot height in pixels")
	pf.IntVar(&opts.settings.Labels, config.FlagLabels, opts.settings.Labels, "axis label intervals")

	f := rootCmd.Flags()
	f.IntVar(&opts.settings.TPS, config.FlagTPS, opts.settings.TPS, "window ticks per second")
	f.BoolVar(&opts.headless.Enabled, "headless", false, "run without a window")
	f.IntVar(&opts.headless.Hz, "hz", 60, "tick rate in headless mode")
	f.Uint64Var(&opts.headless.Ticks, "ticks", 0, "stop after N ticks in headless mode (0 = run forever)")
	f.BoolVar(&opts.quiet, "quiet", false, "discard log output")

	rootCmd.AddCommand(newSampleCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func loadSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	s := opts.settings
	config.Merge(&s, fileCfg, cmd.Flags().Changed)
	if err := s.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

func runPlot(cmd *cobra.Command, opts *options) error {
	s, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	var logw io.Writer = os.Stdout
	if opts.quiet {
		logw = io.Discard
	}
	hcfg := hal.Config{
		Width:  s.Width,
		Height: s.Height,
		Title:  "plotter",
		TPS:    s.TPS,
		Log:    logw,
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Plot: s.PlotConfig()})
	}

	if opts.headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hcfg, newApp, opts.headless)
		if errors.Is(err, context.Canceled) {
			return nil
		}
	} else {
		err = hal.RunWindow(hcfg, newApp)
	}
	if errors.Is(err, plotter.ErrQuit) {
		return nil
	}
	return err
}

func newSampleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the sampled curve as \"x y\" screen coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return app.WriteSamples(cmd.OutOrStdout(), s.Frame(), s.PlotConfig())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
