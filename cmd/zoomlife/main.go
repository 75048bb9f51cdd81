package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"zoomlife/internal/app"
	"zoomlife/internal/config"
	"zoomlife/internal/patterns"
	"zoomlife/internal/report"
	"zoomlife/internal/term"
	"zoomlife/internal/world"
)

var (
	cfg         = config.DefaultConfig()
	configFile  string
	patternFile string
	verbose     bool
	generations int
	plotWidth   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "zoomlife",
		Short:             "Conway's Game of Life with scroll-wheel zoom",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE:              runWindow,
	}
	cfg.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&patternFile, "pattern-file", "", "load a .cells pattern and place it at the centre")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log input handling to stderr")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "play in the terminal",
		RunE:  runTerm,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report the population history",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVarP(&generations, "generations", "g", 100, "number of generations")
	runCmd.Flags().IntVar(&plotWidth, "plot-width", 72, "population plot width")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		RunE:  listPatterns,
	}

	saveCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], cfg)
		},
	}

	rootCmd.AddCommand(termCmd, runCmd, patternsCmd, saveCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	if configFile != "" {
		if err := cfg.LoadFile(configFile, cmd.Flags()); err != nil {
			return err
		}
	}
	if patternFile != "" {
		if err := loadPatternFile(patternFile); err != nil {
			return err
		}
	}
	return cfg.Validate()
}

func loadPatternFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := patterns.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	patterns.Register(p)
	cfg.Pattern = p.Name
	return nil
}

func logger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "zoomlife: ", log.LstdFlags)
}

func newState() (*world.State, error) {
	return world.New(cfg.WorldOptions())
}

func runWindow(cmd *cobra.Command, _ []string) error {
	state, err := newState()
	if err != nil {
		return err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return err
	}
	err = app.RunWindow(state, app.WindowOptions{
		Title:   "zoomlife",
		TPS:     cfg.TPS,
		Palette: pal,
		Logger:  logger(),
	})
	if errors.Is(err, app.ErrNoWindow) {
		fmt.Fprintln(os.Stderr, "The window front end requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/zoomlife` or use `zoomlife term`.")
	}
	return err
}

func runTerm(cmd *cobra.Command, _ []string) error {
	state, err := newState()
	if err != nil {
		return err
	}
	return term.Run(cmd.Context(), state, term.Options{TPS: cfg.TPS, Logger: logger()})
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	state, err := newState()
	if err != nil {
		return err
	}
	if cfg.Pattern == "" {
		if err := state.Randomize(); err != nil {
			return err
		}
	}
	h, err := report.Collect(state, generations)
	if err != nil {
		return err
	}
	fmt.Print(report.Render(h, plotWidth))
	return nil
}

func listPatterns(cmd *cobra.Command, _ []string) error {
	for _, name := range patterns.Names() {
		p, err := patterns.Lookup(name)
		if err != nil {
			return err
		}
		size := p.Size()
		fmt.Printf("  %-12s %s %s\n",
			aurora.Green(name),
			aurora.Colorize(fmt.Sprintf("%dx%d", size.W, size.H), aurora.BlueFg),
			p.Description)
	}
	return nil
}
