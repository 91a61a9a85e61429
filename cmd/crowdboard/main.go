package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DaanHessen/crowdboard/internal/diagram"
	"github.com/DaanHessen/crowdboard/internal/engine"
	"github.com/DaanHessen/crowdboard/internal/store"
	"github.com/DaanHessen/crowdboard/internal/text"
	"github.com/DaanHessen/crowdboard/internal/ui"
	"github.com/DaanHessen/crowdboard/internal/util"
)

var version = "0.1.0"

type rootFlags struct {
	configPath   string
	assetDir     string
	exportDir    string
	theme        string
	glamourStyle string
	logFile      string
	debug        bool
	tab          string
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "crowdboard:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "crowdboard",
		Short:         "Crowd management storyboard for the German Hanger venue",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			tab, err := startTab(flags.tab)
			if err != nil {
				return err
			}
			logger, err := util.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("starting",
				zap.String("version", version),
				zap.String("assets", cfg.AssetDir),
				zap.String("theme", cfg.Theme))
			return ui.Run(cmd.Context(), ui.Options{
				Config:   cfg,
				Assets:   store.Open(cfg),
				Renderer: text.WithFallback(text.NewGlamour(cfg.GlamourStyle), text.Plain()),
				Logger:   logger,
				Version:  version,
				StartTab: tab,
			})
		},
	}
	root.Flags().StringVar(&flags.tab, "tab", "", "start view: storyboard|empathize|define|ideate|prototype|test")
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", util.DefaultConfigPath(), "YAML config file")
	pf.StringVar(&flags.assetDir, "assets", "", "directory holding venue-map.png")
	pf.StringVar(&flags.exportDir, "export-dir", "", "directory for exported diagrams")
	pf.StringVar(&flags.theme, "theme", "", "catppuccin|dracula|gruvbox|solarized_dark")
	pf.StringVar(&flags.glamourStyle, "glamour-style", "", "auto|dark|light|notty")
	pf.StringVar(&flags.logFile, "log", "", "write structured logs to this file")
	pf.BoolVar(&flags.debug, "debug", false, "log at debug level")

	root.AddCommand(newExportCmd(flags), newVersionCmd())
	return root
}

// startTab validates the --tab flag; empty keeps the storyboard.
func startTab(name string) (engine.Tab, error) {
	if name == "" {
		return engine.TabStoryboard, nil
	}
	tab, ok := engine.ParseTab(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return "", fmt.Errorf("unknown tab %q", name)
	}
	return tab, nil
}

// resolveConfig layers defaults, the config file, CROWDBOARD_* variables and
// finally explicit flags.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (util.Config, error) {
	cfg, err := util.LoadFile(util.DefaultConfig(), flags.configPath)
	if err != nil {
		return cfg, err
	}
	cfg = util.ApplyEnv(cfg, os.LookupEnv)
	changed := cmd.Flags().Changed
	if changed("assets") {
		cfg.AssetDir = flags.assetDir
	}
	if changed("export-dir") {
		cfg.ExportDir = flags.exportDir
	}
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("glamour-style") {
		cfg.GlamourStyle = flags.glamourStyle
	}
	if changed("log") {
		cfg.LogFile = flags.logFile
	}
	if changed("debug") {
		cfg.Debug = flags.debug
	}
	return cfg, nil
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	var mode, format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the venue diagram as SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := util.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var modes []bool
			switch strings.ToLower(mode) {
			case "peak":
				modes = []bool{true}
			case "nonpeak", "non-peak", "non_peak":
				modes = []bool{false}
			case "both":
				modes = []bool{true, false}
			default:
				return fmt.Errorf("unknown mode %q (want peak, nonpeak or both)", mode)
			}
			dir := out
			if dir == "" {
				dir = cfg.ExportDir
			}
			for _, peak := range modes {
				path := filepath.Join(dir, diagram.FileName(peak, format))
				written, err := diagram.Save(diagram.Options{Path: path, Format: format, Peak: peak})
				if err != nil {
					logger.Error("export failed", zap.String("path", path), zap.Error(err))
					return err
				}
				logger.Info("diagram exported", zap.String("path", written), zap.Bool("peak", peak))
				fmt.Fprintln(cmd.OutOrStdout(), written)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "both", "peak|nonpeak|both")
	cmd.Flags().StringVar(&format, "format", "svg", "svg|png")
	cmd.Flags().StringVar(&out, "out", "", "output directory (defaults to the configured export dir)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "crowdboard", version)
		},
	}
}
