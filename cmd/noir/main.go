package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/noir/internal/asset"
	"github.com/san-kum/noir/internal/config"
	"github.com/san-kum/noir/internal/gui"
	"github.com/san-kum/noir/internal/report"
	"github.com/san-kum/noir/internal/session"
	"github.com/san-kum/noir/internal/toggle"
	"github.com/san-kum/noir/internal/tui"
)

var (
	configFile string
	preset     string
	assetPath  string
	period     int
	variant    string
	width      int
	height     int
	fps        int
	logLevel   string
	// term
	themeName string
	// config
	outFile string
	// schedule
	frames    int
	plotWidth int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags; with no subcommand the image
// is shown in a window.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "noir",
		Short:        "show an image, toggling between color and grayscale",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&assetPath, "asset", "", "image to display")
	pf.IntVar(&period, "period", 0, "frames between mode toggles")
	pf.StringVar(&variant, "variant", "", fmt.Sprintf("toggle variant (%s)", strings.Join(toggle.VariantNames(), ", ")))
	pf.IntVar(&width, "width", 0, "canvas width")
	pf.IntVar(&height, "height", 0, "canvas height")
	pf.IntVar(&fps, "fps", 0, "target frame rate")
	pf.StringVar(&logLevel, "log", "", "log level (none, normal, debug)")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "show the image in a window",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "show the image in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	termCmd.Flags().StringVar(&themeName, "theme", tui.Themes[0].Name, fmt.Sprintf("color theme (%s)", strings.Join(tui.ThemeNames(), ", ")))

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "print when the mode toggles, without loading the image",
		Args:  cobra.NoArgs,
		RunE:  runSchedule,
	}
	scheduleCmd.Flags().IntVar(&frames, "frames", 600, "number of frames to simulate")
	scheduleCmd.Flags().IntVar(&plotWidth, "plot-width", 70, "plot width in columns")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration, or save it with --out",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&outFile, "out", "", "write the configuration to this file instead of stdout")

	rootCmd.AddCommand(windowCmd, termCmd, scheduleCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		var err error
		if cfg, err = config.LoadOnto(configFile, cfg); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("asset") {
		cfg.Asset = assetPath
	}
	if flags.Changed("period") {
		cfg.Toggle.Period = period
	}
	if flags.Changed("variant") {
		cfg.Toggle.Variant = variant
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("log") {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func prepare(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := cfg.Logging.Prepare()
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func startSession(cmd *cobra.Command) (cfg *config.Config, st *session.State, log *zap.Logger, err error) {
	if cfg, log, err = prepare(cmd); err != nil {
		return nil, nil, nil, err
	}
	if st, err = session.Init(cfg, asset.Load, log); err != nil {
		log.Error("Unable to start", zap.Error(err))
		err = multierr.Append(err, syncLog(log))
		return nil, nil, nil, err
	}
	return cfg, st, log, nil
}

func runWindow(cmd *cobra.Command, args []string) (err error) {
	cfg, st, log, err := startSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, syncLog(log))
	}()

	gui.Run(cfg, st, log)
	return nil
}

func runTerm(cmd *cobra.Command, args []string) (err error) {
	cfg, st, log, err := startSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, syncLog(log))
	}()

	return tui.Run(cfg, st, themeName, log)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := report.Simulate(context.Background(), cfg.Toggle.Period, cfg.Variant(), frames)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, s.String())
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.Plot(plotWidth))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s period=%-4d variant=%-10s fps=%d\n", name, p.Toggle.Period, p.Toggle.Variant, p.FPS)
	}
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return fmt.Errorf("unable to save config: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outFile)
		return nil
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// syncLog ignores the error zap reports when stdout is a terminal.
func syncLog(log *zap.Logger) error {
	if err := log.Sync(); err != nil && !config.EnableColorOutput(os.Stdout) {
		return err
	}
	return nil
}
