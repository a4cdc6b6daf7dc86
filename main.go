package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seedgarden/config"
	"seedgarden/internal/handler"
	"seedgarden/internal/logging"
	"seedgarden/internal/overlay"
	"seedgarden/internal/service"
	"seedgarden/internal/training"
	"seedgarden/internal/utils"
	"seedgarden/pkg/display"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	verbose    bool
	layoutPath string
	randomSeed int64
	eventsPath string

	cfg    config.Config
	layout config.Layout
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "seedgarden",
	Short: "Feed word seeds and feeling cards to a talking stump",
	Long: `seedgarden is the game logic behind the seed garden demo.

The host scene sends one JSON event per line (grab, release, tick, feed,
train, respond, status) and the garden prints floating text, progress and
the stump's replies.

Run without arguments to read events from stdin.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return err
		}

		if layoutPath == "" {
			layoutPath = cfg.LayoutPath
		}
		layout, err = config.LoadLayout(layoutPath)
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("seed") {
			randomSeed = cfg.RandomSeed
		}
		if randomSeed == 0 {
			randomSeed = time.Now().UnixNano()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the garden from a stream of host events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the planted garden as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		garden := newGarden(nil, nil)
		doc := struct {
			RandomSeed int64 `yaml:"random_seed"`
			Seeds      any   `yaml:"seeds"`
			Cards      any   `yaml:"cards"`
			Stump      any   `yaml:"stump"`
		}{randomSeed, garden.Seeds(), garden.Cards(), layout.Stump}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode layout: %w", err)
		}
		return nil
	},
}

func newGarden(ov *overlay.Overlay, out display.Display) *service.Garden {
	engine := service.NewResponseEngine(training.NewMemoryExampleRepository(logger.Named("training")))
	return service.NewGarden(layout, randomSeed, engine, ov, out, logger.Named("garden"))
}

func runPlay(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = cmd.InOrStdin()
	if eventsPath != "" {
		f, err := os.Open(eventsPath)
		if err != nil {
			return fmt.Errorf("failed to open events file: %w", err)
		}
		defer f.Close()
		in = f
	}

	ov := overlay.New(overlay.DefaultTTL)
	defer ov.Close()
	ov.OnClear(func(text string) {
		logger.Debug("floating text cleared", zap.String("text", text))
	})

	out := display.NewConsole(cmd.OutOrStdout(), cfg.Plain)
	garden := newGarden(ov, out)
	if err := out.Info(utils.BuildWelcome(len(garden.Seeds()), len(garden.Cards()))); err != nil {
		return err
	}

	logger.Info("garden ready", zap.Int64("random_seed", randomSeed))
	return handler.NewEventHandler(garden, logger.Named("handler")).Run(ctx, in)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "Garden layout YAML file")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "seed", 0, "Random seed for planting (0 picks one)")
	playCmd.Flags().StringVar(&eventsPath, "events", "", "Read events from a file instead of stdin")

	rootCmd.AddCommand(playCmd, layoutCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
