package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"martianrobots/internal/config"
	"martianrobots/internal/input"
	"martianrobots/internal/logging"
	"martianrobots/internal/mars"
)

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	render     bool
	workers    int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "martianrobots [file...]",
		Short: "Simulate robots on a grid with lost-robot scents",
		Long: `Reads a grid line ("max_x max_y") followed by pairs of robot lines
("x y O" and an instruction string of L, R and F) and prints each robot's
final position, marked LOST when it fell off the grid.

With no file arguments the input is read from stdin. Several files are
simulated independently, each on its own grid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "console", "log format: console or json")
	cmd.Flags().BoolVar(&f.render, "render", false, "draw each grid with its scents on stderr")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 4, "number of input files simulated at once")
	return cmd
}

func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fs.Changed("render") {
		cfg.Render = f.render
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	names, batches, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	reports, err := mars.SimulateBatches(cmd.Context(), batches, cfg.Workers, mars.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, rp := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(out, "== %s ==\n", names[i])
		}
		for _, line := range rp.Lines() {
			fmt.Fprintln(out, line)
		}
		if cfg.Render {
			fmt.Fprint(cmd.ErrOrStderr(), rp.Render())
		}
		logger.Debug("run complete",
			zap.String("input", names[i]),
			zap.Int("robots", len(rp.Results)),
			zap.Int("scents", len(rp.Grid.Scents())),
		)
	}
	return nil
}

func readInputs(cmd *cobra.Command, args []string) ([]string, [][]string, error) {
	if len(args) == 0 {
		lines, err := input.ReadLines(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return []string{"stdin"}, [][]string{lines}, nil
	}
	batches := make([][]string, 0, len(args))
	for _, path := range args {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		lines, err := input.ReadLines(file)
		file.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		batches = append(batches, lines)
	}
	return args, batches, nil
}
